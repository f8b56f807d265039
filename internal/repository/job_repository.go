package repository

import (
	"context"
	"errors"
	"sync"

	"content-platform/internal/domain/job"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

// JobRepository holds the job collection. State lives for the lifetime of the
// process only; there is no persistence behind it.
type JobRepository interface {
	List(ctx context.Context) ([]job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	// Save upserts: replace-by-id when the job is already held, append
	// otherwise. Insertion order is preserved across replacements.
	Save(ctx context.Context, j job.Job) error
}

type MemoryJobRepository struct {
	mu    sync.RWMutex
	jobs  []job.Job
	index map[uuid.UUID]int
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{index: make(map[uuid.UUID]int)}
}

func (r *MemoryJobRepository) List(ctx context.Context) ([]job.Job, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j.Clone())
	}
	return out, nil
}

func (r *MemoryJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return job.Job{}, ErrJobNotFound
	}
	return r.jobs[i].Clone(), nil
}

func (r *MemoryJobRepository) Save(ctx context.Context, j job.Job) error {
	_ = ctx

	if j.ID == uuid.Nil {
		return errors.New("job id must be set")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[j.ID]; ok {
		r.jobs[i] = j.Clone()
		return nil
	}

	r.jobs = append(r.jobs, j.Clone())
	r.index[j.ID] = len(r.jobs) - 1
	return nil
}
