package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/JRebertt/Cursos/internal/model"
	"github.com/JRebertt/Cursos/internal/server"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	server *server.Server
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{server: s}
}

func (r *UserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	stmt := `SELECT EXISTS (SELECT 1 FROM users WHERE name = @name)`

	var exists bool
	err := r.server.DB.Pool.QueryRow(ctx, stmt, pgx.NamedArgs{"name": name}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user name %q: %w", name, err)
	}

	return exists, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, name, sessionID string) (*model.User, error) {
	stmt := `
		INSERT INTO users (name, session_id)
		VALUES (@name, @session_id)
		RETURNING *
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"name":       name,
		"session_id": sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create user query for name=%s: %w", name, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:users for name=%s: %w", name, err)
	}

	return &user, nil
}

// FindBySessionID returns the oldest user created under sessionID,
// or nil when none exists.
func (r *UserRepository) FindBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	stmt := `
		SELECT *
		FROM users
		WHERE session_id = @session_id
		ORDER BY created_at ASC
		LIMIT 1
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"session_id": sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute find user by session query: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to collect row from table:users: %w", err)
	}

	return &user, nil
}
