package usecase

import (
	"context"
	"errors"
	"log"

	"content-platform/internal/repository"
	"content-platform/internal/ws"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID uuid.UUID, applicant string) error
}

// Application handles the apply action on a job. The notification is
// fire-and-forget; no acknowledgment is modeled.
type Application struct {
	jobs   repository.JobRepository
	logger *log.Logger
}

func NewApplicationUsecase(jobs repository.JobRepository, logger *log.Logger) *Application {
	return &Application{jobs: jobs, logger: logger}
}

func (u *Application) Apply(ctx context.Context, jobID uuid.UUID, applicant string) error {
	if jobID == uuid.Nil {
		return ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	ws.NotifyJobApplied(j.ID, j.Title, applicant)
	if u.logger != nil {
		u.logger.Printf("[Apply] Application received | job_id=%s title=%q applicant=%q", j.ID, j.Title, applicant)
	}
	return nil
}
