package service

import (
	"context"

	"github.com/JRebertt/Cursos/internal/lib/job"
	"github.com/JRebertt/Cursos/internal/model"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// ActivityRecorder records that a session created, changed or removed an entity.
// Recording is best effort and never fails the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, sessionID string, kind model.ActivityKind, entityID *uuid.UUID)
}

type taskEnqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task) error
}

// JobActivityRecorder records activity through the activity:record job.
type JobActivityRecorder struct {
	jobs taskEnqueuer
}

func NewJobActivityRecorder(jobs *job.JobService) *JobActivityRecorder {
	return &JobActivityRecorder{jobs: jobs}
}

func (r *JobActivityRecorder) Record(ctx context.Context, sessionID string, kind model.ActivityKind, entityID *uuid.UUID) {
	logger := zerolog.Ctx(ctx)

	task, err := job.NewActivityTask(sessionID, kind, entityID)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to build activity task")
		return
	}

	if err := r.jobs.Enqueue(ctx, task); err != nil {
		logger.Warn().Err(err).Str("kind", string(kind)).Msg("failed to enqueue activity task")
	}
}
