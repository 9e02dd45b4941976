package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JRebertt/Cursos/internal/model"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ActivityStore persists activity events.
type ActivityStore interface {
	InsertActivity(ctx context.Context, sessionID string, kind model.ActivityKind, entityID *uuid.UUID) error
}

// InitHandlers wires the dependencies task handlers need.
func (j *JobService) InitHandlers(activity ActivityStore) {
	j.activity = activity
}

func (j *JobService) handleActivityRecordTask(ctx context.Context, t *asynq.Task) error {
	var p ActivityPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload will never succeed.
		return fmt.Errorf("failed to unmarshal activity payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Debug().
		Str("type", string(p.Kind)).
		Str("session_id", p.SessionID).
		Msg("Processing activity task")

	if err := j.activity.InsertActivity(ctx, p.SessionID, p.Kind, p.EntityID); err != nil {
		j.logger.Error().
			Str("type", string(p.Kind)).
			Str("session_id", p.SessionID).
			Err(err).
			Msg("Failed to record activity")
		return err
	}

	return nil
}
