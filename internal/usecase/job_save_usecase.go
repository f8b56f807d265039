package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"content-platform/internal/domain/job"
	"content-platform/internal/repository"
	"content-platform/internal/ws"

	"github.com/google/uuid"
)

type SaveChecklistItem struct {
	ID        *uuid.UUID
	Label     string
	Completed bool
}

// SaveJobInput is the create/edit form payload. Nil fields fall back to the
// board defaults when the job is built.
type SaveJobInput struct {
	Title         string
	Description   string
	Guidelines    string
	GuidelinesURL *string
	GithubPRURL   *string
	Award         *float64
	Skills        []string
	DueDate       *time.Time
	Category      *string
	Status        *string
	Checklist     []SaveChecklistItem
	RepoName      string
	RepoURL       string
}

type JobSaveUsecase interface {
	CreateJob(ctx context.Context, in SaveJobInput) (job.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, in SaveJobInput) (job.Job, error)
}

type JobSave struct {
	jobs   repository.JobRepository
	cache  SearchCache
	logger *log.Logger
	now    func() time.Time
}

func NewJobSaveUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *JobSave {
	return &JobSave{jobs: jobs, cache: cache, logger: logger, now: time.Now}
}

func (u *JobSave) CreateJob(ctx context.Context, in SaveJobInput) (job.Job, error) {
	draft, err := toDraft(in)
	if err != nil {
		return job.Job{}, err
	}

	j := job.Build(draft, nil, u.now())
	if err := u.jobs.Save(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	u.afterMutation(ctx, j, "created")
	return j, nil
}

func (u *JobSave) UpdateJob(ctx context.Context, id uuid.UUID, in SaveJobInput) (job.Job, error) {
	if id == uuid.Nil {
		return job.Job{}, ErrInvalidInput
	}

	draft, err := toDraft(in)
	if err != nil {
		return job.Job{}, err
	}

	existing, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}

	j := job.Build(draft, &existing, u.now())
	if err := u.jobs.Save(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	u.afterMutation(ctx, j, "updated")
	return j, nil
}

func (u *JobSave) afterMutation(ctx context.Context, j job.Job, action string) {
	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, JobsSearchPattern)
	}
	ws.NotifyJobSaved(j.ID, j.Title, action)
	if u.logger != nil {
		u.logger.Printf("[Jobs] Job %s | id=%s title=%q", action, j.ID, j.Title)
	}
}

func toDraft(in SaveJobInput) (job.Draft, error) {
	if strings.TrimSpace(in.Title) == "" {
		return job.Draft{}, ErrInvalidInput
	}
	if in.Award != nil && *in.Award < 0 {
		return job.Draft{}, ErrInvalidInput
	}

	d := job.Draft{
		Title:         in.Title,
		Description:   in.Description,
		Guidelines:    in.Guidelines,
		GuidelinesURL: in.GuidelinesURL,
		GithubPRURL:   in.GithubPRURL,
		Award:         in.Award,
		Skills:        in.Skills,
		DueDate:       in.DueDate,
		RepoName:      in.RepoName,
		RepoURL:       in.RepoURL,
	}

	if in.Category != nil {
		c := job.Category(*in.Category)
		if !c.Valid() {
			return job.Draft{}, ErrInvalidInput
		}
		d.Category = &c
	}
	if in.Status != nil {
		s := job.Status(*in.Status)
		if !s.Valid() {
			return job.Draft{}, ErrInvalidInput
		}
		d.Status = &s
	}

	seen := make(map[uuid.UUID]struct{}, len(in.Checklist))
	for _, it := range in.Checklist {
		if it.ID != nil && *it.ID != uuid.Nil {
			if _, dup := seen[*it.ID]; dup {
				return job.Draft{}, ErrInvalidInput
			}
			seen[*it.ID] = struct{}{}
		}
		d.Checklist = append(d.Checklist, job.ChecklistItemDraft{
			ID:        it.ID,
			Label:     it.Label,
			Completed: it.Completed,
		})
	}

	return d, nil
}
