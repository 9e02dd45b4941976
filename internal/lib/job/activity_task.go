package job

import (
	"encoding/json"
	"time"

	"github.com/JRebertt/Cursos/internal/model"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskActivityRecord is the job type name stored in Redis.
const TaskActivityRecord = "activity:record"

// ActivityPayload is the JSON payload of an activity:record task.
type ActivityPayload struct {
	SessionID string             `json:"session_id"`
	Kind      model.ActivityKind `json:"kind"`
	EntityID  *uuid.UUID         `json:"entity_id,omitempty"`
}

// NewActivityTask builds an activity:record task on the low queue.
func NewActivityTask(sessionID string, kind model.ActivityKind, entityID *uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(ActivityPayload{
		SessionID: sessionID,
		Kind:      kind,
		EntityID:  entityID,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskActivityRecord,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
