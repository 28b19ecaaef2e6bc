package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/stayloop/notify/internal/model"
)

// Repository reads per-user notification preferences. The table is owned
// by the user-settings subsystem; this repository never writes to it.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new preference repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByUserID loads a user's preference record. A user without a record
// returns (nil, nil), which the filter treats as everything enabled.
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Preferences, error) {
	query := `
		SELECT new_booking, new_review, payout_completed, payout_initiated,
		       security_alert, policy_change, promotional_offer, tips_for_host,
		       booking_reminder
		FROM notification_settings
		WHERE user_id = $1;
    `

	var p model.Preferences
	err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(
		&p.NewBooking, &p.NewReview, &p.PayoutCompleted, &p.PayoutInitiated,
		&p.SecurityAlert, &p.PolicyChange, &p.PromotionalOffer, &p.TipsForHost,
		&p.BookingReminder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	return &p, nil
}
