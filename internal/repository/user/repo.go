package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
)

var ErrUserNotFound = errors.New("user not found")

// Repository is the read-only user directory consumed by the dispatch
// pipeline: existence checks for explicit sends and the full id listing
// for broadcast fanout.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user directory repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Exists reports whether the user id is present in the directory.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);
    `

	var exists bool
	if err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}

	return exists, nil
}

// ListAllIDs returns every user id in the directory.
func (r *Repository) ListAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM users;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}
