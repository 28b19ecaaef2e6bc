package notification

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

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

const insertQuery = `
		INSERT INTO notifications (
		    user_id, category, title, message, link, image, dedup_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (dedup_key) DO NOTHING
		RETURNING id, "read", created_at;
    `

func TestCreateNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()
	now := time.Now()
	n := model.Notification{
		UserID:   uuid.New(),
		Category: model.CategoryBooking,
		Title:    "Booking confirmed",
		Message:  "Your booking is confirmed",
		Link:     "https://example.com/bookings/42",
		DedupKey: "abc123",
	}

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(n.UserID, n.Category, n.Title, n.Message, n.Link, n.Image, n.DedupKey).
		WillReturnRows(sqlmock.NewRows([]string{"id", "read", "created_at"}).AddRow(notificationID, false, now))

	saved, created, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, notificationID, saved.ID)
	assert.False(t, saved.Read)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNotification_Duplicate(t *testing.T) {
	repo, mock := setupMockDB(t)

	existingID := uuid.New()
	now := time.Now()
	n := model.Notification{
		UserID:   uuid.New(),
		Category: model.CategorySystem,
		Title:    "Maintenance",
		Message:  "Scheduled downtime",
		DedupKey: "dup-key",
	}

	// conflict on dedup_key yields no rows from the insert
	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(n.UserID, n.Category, n.Title, n.Message, n.Link, n.Image, n.DedupKey).
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, "read", created_at
		FROM notifications
		WHERE dedup_key = $1;
    `)).
		WithArgs(n.DedupKey).
		WillReturnRows(sqlmock.NewRows([]string{"id", "read", "created_at"}).AddRow(existingID, false, now))

	saved, created, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existingID, saved.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

const listQuery = `
		SELECT id, user_id, category, title, message, link, image, "read", created_at
		FROM notifications
		WHERE user_id = $1
		  AND ($2::uuid IS NULL OR (created_at, id) < (
		      SELECT created_at, id FROM notifications WHERE id = $2
		  ))
		ORDER BY created_at DESC, id DESC
		LIMIT $3;
    `

func TestListByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "category", "title", "message", "link", "image", "read", "created_at"}).
		AddRow(uuid.New(), userID, "BOOKING", "t1", "m1", "", "", false, now).
		AddRow(uuid.New(), userID, "REVIEW", "t2", "m2", "", "", true, now.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs(userID, uuid.NullUUID{}, 10).
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), userID, uuid.NullUUID{}, 10)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, model.CategoryBooking, list[0].Category)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_WithCursor(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()
	cursor := uuid.NullUUID{UUID: uuid.New(), Valid: true}

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs(userID, cursor, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category", "title", "message", "link", "image", "read", "created_at"}))

	list, err := repo.ListByUser(context.Background(), userID, cursor, 5)
	assert.NoError(t, err)
	assert.Empty(t, list)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1;
    `)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

	total, err := repo.CountByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 15, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

const markReadQuery = `
		UPDATE notifications
		SET "read" = TRUE
		WHERE id = $1 AND "read" = FALSE;
    `

func TestMarkRead_Unread(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(markReadQuery)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	alreadyRead, err := repo.MarkRead(context.Background(), id)
	assert.NoError(t, err)
	assert.False(t, alreadyRead)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_AlreadyRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(markReadQuery)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT "read"
		FROM notifications
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"read"}).AddRow(true))

	alreadyRead, err := repo.MarkRead(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, alreadyRead)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(markReadQuery)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT "read"
		FROM notifications
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.MarkRead(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()

	query := regexp.QuoteMeta(`
		UPDATE notifications
		SET "read" = TRUE
		WHERE user_id = $1 AND "read" = FALSE;
    `)

	mock.ExpectExec(query).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 5))

	count, err := repo.MarkAllRead(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)

	// second pass has nothing left to mark
	mock.ExpectExec(query).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	count, err = repo.MarkAllRead(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()

	query := regexp.QuoteMeta(`
		DELETE FROM notifications
		WHERE user_id = $1;
    `)

	mock.ExpectExec(query).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.DeleteAllByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	mock.ExpectExec(query).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.DeleteAllByUser(context.Background(), userID)
	assert.ErrorIs(t, err, ErrNoNotifications)

	assert.NoError(t, mock.ExpectationsWereMet())
}
