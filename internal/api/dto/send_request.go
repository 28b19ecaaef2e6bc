package dto

// SendRequest is the payload for a single-recipient notification.
type SendRequest struct {
	Category string `json:"category" validate:"required,oneof=BOOKING REVIEW PAYMENT ALERT SYSTEM COUPON WISHLIST EVENT"`
	Title    string `json:"title" validate:"required,max=200"`
	Message  string `json:"message" validate:"required"`
	Link     string `json:"link" validate:"omitempty,uri"`
	Image    string `json:"image" validate:"omitempty,uri"`
}

// BroadcastRequest is the payload for an all-users broadcast. Any category
// is accepted, though in practice broadcasts are SYSTEM or ALERT.
type BroadcastRequest struct {
	Category string `json:"category" validate:"required,oneof=BOOKING REVIEW PAYMENT ALERT SYSTEM COUPON WISHLIST EVENT"`
	Title    string `json:"title" validate:"required,max=200"`
	Message  string `json:"message" validate:"required"`
	Link     string `json:"link" validate:"omitempty,uri"`
	Image    string `json:"image" validate:"omitempty,uri"`
}
