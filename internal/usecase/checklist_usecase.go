package usecase

import (
	"context"
	"errors"

	"content-platform/internal/domain/job"
	"content-platform/internal/repository"

	"github.com/google/uuid"
)

var ErrChecklistItemNotFound = errors.New("checklist item not found")

type ChecklistUsecase interface {
	ToggleItem(ctx context.Context, jobID, itemID uuid.UUID) (job.Job, int, error)
}

type Checklist struct {
	jobs  repository.JobRepository
	cache SearchCache
}

func NewChecklistUsecase(jobs repository.JobRepository, cache SearchCache) *Checklist {
	return &Checklist{jobs: jobs, cache: cache}
}

// ToggleItem flips one checklist item and returns the job with its new
// completed count. Only the addressed item changes.
func (u *Checklist) ToggleItem(ctx context.Context, jobID, itemID uuid.UUID) (job.Job, int, error) {
	if jobID == uuid.Nil || itemID == uuid.Nil {
		return job.Job{}, 0, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, 0, ErrJobNotFound
		}
		return job.Job{}, 0, ErrInternal
	}

	items, err := job.ToggleChecklistItem(j.Checklist, itemID)
	if err != nil {
		return job.Job{}, 0, ErrChecklistItemNotFound
	}
	j.Checklist = items

	if err := u.jobs.Save(ctx, j); err != nil {
		return job.Job{}, 0, ErrInternal
	}

	// Completed counts appear on the list view, so cached searches go stale.
	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, JobsSearchPattern)
	}

	return j, job.CompletedCount(j.Checklist), nil
}
