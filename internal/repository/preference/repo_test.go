package preference

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/stayloop/notify/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

const getQuery = `
		SELECT new_booking, new_review, payout_completed, payout_initiated,
		       security_alert, policy_change, promotional_offer, tips_for_host,
		       booking_reminder
		FROM notification_settings
		WHERE user_id = $1;
    `

func TestGetByUserID(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"new_booking", "new_review", "payout_completed", "payout_initiated",
		"security_alert", "policy_change", "promotional_offer", "tips_for_host",
		"booking_reminder",
	}).AddRow(false, true, true, false, true, true, false, true, true)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs(userID).
		WillReturnRows(rows)

	p, err := repo.GetByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.False(t, p.NewBooking)
	assert.True(t, p.NewReview)
	assert.False(t, p.Allows(model.CategoryBooking))
	assert.True(t, p.Allows(model.CategoryPayment))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID_Absent(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	p, err := repo.GetByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.True(t, p.Allows(model.CategoryBooking), "absent record enables everything")

	assert.NoError(t, mock.ExpectationsWereMet())
}
