package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"content-platform/internal/domain/job"
	"content-platform/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrJobNotFound  = errors.New("job not found")
)

type JobListParams struct {
	Query      string
	Categories []string
}

type JobListItem struct {
	ID             uuid.UUID    `json:"id"`
	Title          string       `json:"title"`
	Award          float64      `json:"award"`
	Skills         []string     `json:"skills"`
	DueDate        time.Time    `json:"due_date"`
	Category       job.Category `json:"category"`
	Status         job.Status   `json:"status"`
	RepoName       string       `json:"repo_name"`
	CompletedCount int          `json:"completed_count"`
	ChecklistTotal int          `json:"checklist_total"`
	CreatedAt      time.Time    `json:"created_at"`
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error)
}

type JobList struct {
	jobs   repository.JobRepository
	cache  SearchCache
	logger *log.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *JobList {
	return &JobList{jobs: jobs, cache: cache, logger: logger}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error) {
	categories, err := parseCategories(params.Categories)
	if err != nil {
		return nil, ErrInvalidInput
	}

	cacheable := params.Query != "" || len(categories) > 0
	cacheKey := ""
	if cacheable && u.cache != nil {
		cacheKey = JobsSearchCacheKey(params.Query, params.Categories)

		var cached []JobListItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	all, err := u.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	filtered := job.Filter(all, params.Query, categories)

	out := make([]JobListItem, 0, len(filtered))
	for _, j := range filtered {
		out = append(out, JobListItem{
			ID:             j.ID,
			Title:          j.Title,
			Award:          j.Award,
			Skills:         j.Skills,
			DueDate:        j.DueDate,
			Category:       j.Category,
			Status:         j.Status,
			RepoName:       j.RepoName,
			CompletedCount: job.CompletedCount(j.Checklist),
			ChecklistTotal: len(j.Checklist),
			CreatedAt:      j.CreatedAt,
		})
	}

	if cacheable && u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
	}
	return out, nil
}

func parseCategories(raw []string) ([]job.Category, error) {
	out := make([]job.Category, 0, len(raw))
	for _, s := range raw {
		c := job.Category(s)
		if !c.Valid() {
			return nil, ErrInvalidInput
		}
		out = append(out, c)
	}
	return out, nil
}
