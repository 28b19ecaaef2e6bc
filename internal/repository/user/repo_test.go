package user

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"
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

func TestExists(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	query := regexp.QuoteMeta(`
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);
    `)

	mock.ExpectQuery(query).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(query).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.Exists(context.Background(), id)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllIDs(t *testing.T) {
	repo, mock := setupMockDB(t)

	id1, id2 := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id
		FROM users;
    `)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id1).AddRow(id2))

	ids, err := repo.ListAllIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id1, id2}, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}
