package repository

import (
	"context"
	"fmt"

	"github.com/JRebertt/Cursos/internal/model"
	"github.com/JRebertt/Cursos/internal/server"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ActivityRepository struct {
	server *server.Server
}

func NewActivityRepository(s *server.Server) *ActivityRepository {
	return &ActivityRepository{server: s}
}

func (r *ActivityRepository) InsertActivity(ctx context.Context, sessionID string, kind model.ActivityKind, entityID *uuid.UUID) error {
	stmt := `
		INSERT INTO activity_events (session_id, kind, entity_id)
		VALUES (@session_id, @kind, @entity_id)
	`

	_, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{
		"session_id": sessionID,
		"kind":       string(kind),
		"entity_id":  entityID,
	})
	if err != nil {
		return fmt.Errorf("failed to insert activity kind=%s: %w", kind, err)
	}

	return nil
}

// ListActivity returns the events recorded for a session, oldest first.
func (r *ActivityRepository) ListActivity(ctx context.Context, sessionID string) ([]model.ActivityEvent, error) {
	stmt := `
		SELECT *
		FROM activity_events
		WHERE session_id = @session_id
		ORDER BY created_at ASC
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"session_id": sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list activity query: %w", err)
	}

	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ActivityEvent])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:activity_events: %w", err)
	}

	return events, nil
}
