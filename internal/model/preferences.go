package model

// Preferences holds a user's per-category notification switches. The record
// is owned by the user-settings subsystem and is read-only here.
type Preferences struct {
	NewBooking       bool `json:"new_booking"`
	NewReview        bool `json:"new_review"`
	PayoutCompleted  bool `json:"payout_completed"`
	PayoutInitiated  bool `json:"payout_initiated"`
	SecurityAlert    bool `json:"security_alert"`
	PolicyChange     bool `json:"policy_change"`
	PromotionalOffer bool `json:"promotional_offer"`
	TipsForHost      bool `json:"tips_for_host"`
	BookingReminder  bool `json:"booking_reminder"`
}

// Allows reports whether notifications of the given category are enabled.
// A nil receiver means the user never saved preferences, which enables
// every category. Categories without a mapped flag are always enabled.
func (p *Preferences) Allows(c Category) bool {
	if p == nil {
		return true
	}

	switch c {
	case CategoryBooking:
		return p.NewBooking
	case CategoryReview:
		return p.NewReview
	case CategoryPayment:
		return p.PayoutCompleted || p.PayoutInitiated
	case CategoryAlert:
		return p.SecurityAlert
	case CategorySystem:
		return p.PolicyChange
	case CategoryCoupon:
		return p.PromotionalOffer
	case CategoryWishlist:
		return p.TipsForHost
	case CategoryEvent:
		return p.BookingReminder
	default:
		return true
	}
}
