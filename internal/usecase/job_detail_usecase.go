package usecase

import (
	"context"
	"errors"

	"content-platform/internal/domain/job"
	"content-platform/internal/domain/matching"
	"content-platform/internal/domain/user"
	"content-platform/internal/repository"

	"github.com/google/uuid"
)

// JobView is the detail-view projection: the full job plus the derived
// checklist completion and, for an authenticated caller, the skill match
// against their declared skills.
type JobView struct {
	Job            job.Job
	CompletedCount int
	Match          *matching.Result
}

type JobDetailUsecase interface {
	GetJob(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (JobView, error)
}

type JobDetail struct {
	jobs  repository.JobRepository
	users user.Repository
}

func NewJobDetailUsecase(jobs repository.JobRepository, users user.Repository) *JobDetail {
	return &JobDetail{jobs: jobs, users: users}
}

func (u *JobDetail) GetJob(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (JobView, error) {
	if id == uuid.Nil {
		return JobView{}, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobView{}, ErrJobNotFound
		}
		return JobView{}, ErrInternal
	}

	view := JobView{
		Job:            j,
		CompletedCount: job.CompletedCount(j.Checklist),
	}

	if userID != nil && *userID != uuid.Nil && u.users != nil {
		usr, err := u.users.GetByID(ctx, *userID)
		if err == nil {
			m := matching.Calculate(j.Skills, usr.Skills)
			view.Match = &m
		}
	}

	return view, nil
}
