package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category is a closed set of notification kinds. Adding a value requires a
// matching entry in Preferences.Allows.
type Category string

const (
	CategoryBooking  Category = "BOOKING"
	CategoryReview   Category = "REVIEW"
	CategoryPayment  Category = "PAYMENT"
	CategoryAlert    Category = "ALERT"
	CategorySystem   Category = "SYSTEM"
	CategoryCoupon   Category = "COUPON"
	CategoryWishlist Category = "WISHLIST"
	CategoryEvent    Category = "EVENT"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryBooking,
	CategoryReview,
	CategoryPayment,
	CategoryAlert,
	CategorySystem,
	CategoryCoupon,
	CategoryWishlist,
	CategoryEvent,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}

	return c, nil
}

// Notification is a durable record of a delivered notification. Everything
// except Read is immutable once the delivery worker has persisted the row.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Category  Category  `json:"category"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	Image     string    `json:"image,omitempty"`
	Read      bool      `json:"read"`
	DedupKey  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationInput is the caller-supplied payload shared by single-recipient
// sends and broadcasts.
type NotificationInput struct {
	Category Category
	Title    string
	Message  string
	Link     string
	Image    string
}

// NotificationPage is one page of a user's notifications, newest first.
// Cursor is the id of the last returned row and resumes the listing when
// passed back; it is nil for an empty page.
type NotificationPage struct {
	Data   []Notification `json:"data"`
	Total  int            `json:"total"`
	Cursor *uuid.UUID     `json:"cursor"`
}
