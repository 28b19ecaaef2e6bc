package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/stayloop/notify/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoNotifications      = errors.New("no notifications found")
)

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a notification row keyed on its dedup key.
// A redelivered job hits the unique constraint, in which case the already
// persisted row is returned and created is false.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, bool, error) {
	query := `
		INSERT INTO notifications (
		    user_id, category, title, message, link, image, dedup_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (dedup_key) DO NOTHING
		RETURNING id, "read", created_at;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, n.UserID, n.Category, n.Title, n.Message, n.Link, n.Image, n.DedupKey,
	).Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err == nil {
		return n, true, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return model.Notification{}, false, fmt.Errorf("failed to create notification: %w", err)
	}

	existing := `
		SELECT id, "read", created_at
		FROM notifications
		WHERE dedup_key = $1;
    `

	err = r.db.Master.QueryRowContext(ctx, existing, n.DedupKey).Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		return model.Notification{}, false, fmt.Errorf("failed to load duplicate notification: %w", err)
	}

	return n, false, nil
}

// ListByUser retrieves one page of a user's notifications, newest first.
// The cursor is the id of the last row of the previous page; listing
// resumes strictly after it in (created_at, id) order.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, cursor uuid.NullUUID, limit int) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, category, title, message, link, image, "read", created_at
		FROM notifications
		WHERE user_id = $1
		  AND ($2::uuid IS NULL OR (created_at, id) < (
		      SELECT created_at, id FROM notifications WHERE id = $2
		  ))
		ORDER BY created_at DESC, id DESC
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Category, &n.Title, &n.Message, &n.Link, &n.Image, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// CountByUser returns the total number of notifications stored for a user.
func (r *Repository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1;
    `

	var total int
	if err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return total, nil
}

// MarkRead flips a notification's read flag. Only the false→true transition
// writes, so concurrent calls are commutative. The alreadyRead result tells
// the caller the row was read before this call.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE notifications
		SET "read" = TRUE
		WHERE id = $1 AND "read" = FALSE;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows > 0 {
		return false, nil
	}

	check := `
		SELECT "read"
		FROM notifications
		WHERE id = $1;
    `

	var read bool
	err = r.db.Master.QueryRowContext(ctx, check, id).Scan(&read)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNotificationNotFound
		}

		return false, fmt.Errorf("failed to check notification: %w", err)
	}

	return read, nil
}

// MarkAllRead marks every unread notification of a user as read and
// returns the number of rows mutated. Zero is a valid result.
func (r *Repository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications
		SET "read" = TRUE
		WHERE user_id = $1 AND "read" = FALSE;
    `

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}

// DeleteAllByUser hard-deletes every notification of a user. A user with
// nothing to clear gets ErrNoNotifications.
func (r *Repository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM notifications
		WHERE user_id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear notifications: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return 0, ErrNoNotifications
	}

	return rows, nil
}
