package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"testing"
	"time"

	"content-platform/internal/domain/job"
	"content-platform/internal/repository"

	"github.com/google/uuid"
)

// fakeSearchCache is an in-process stand-in for the Redis cache, shared by the
// usecase tests in this package.
type fakeSearchCache struct {
	entries map[string][]byte
	deletes []string
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{entries: make(map[string][]byte)}
}

func (c *fakeSearchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *fakeSearchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *fakeSearchCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deletes = append(c.deletes, pattern)
	c.entries = make(map[string][]byte)
	return nil
}

func seededJobRepo(t *testing.T) *repository.MemoryJobRepository {
	t.Helper()

	ctx := context.Background()
	repo := repository.NewMemoryJobRepository()
	due := time.Now().Add(48 * time.Hour)

	jobs := []job.Job{
		{ID: uuid.New(), Title: "Review gateway PR", RepoName: "acme/gateway", Skills: []string{"Go"}, Category: job.CategoryReview, Status: job.StatusOpen, DueDate: due, Checklist: []job.ChecklistItem{{ID: uuid.New(), Label: "read", Completed: true}, {ID: uuid.New(), Label: "comment"}}},
		{ID: uuid.New(), Title: "Add API tests", RepoName: "acme/api", Skills: []string{"Go", "Testing"}, Category: job.CategoryTesting, Status: job.StatusOpen, DueDate: due},
		{ID: uuid.New(), Title: "Fix login crash", RepoName: "acme/auth", Skills: []string{"Go"}, Category: job.CategoryBugfix, Status: job.StatusOpen, DueDate: due},
	}
	for _, j := range jobs {
		if err := repo.Save(ctx, j); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func TestListJobs_NoFiltersReturnsAll(t *testing.T) {
	u := NewJobListUsecase(seededJobRepo(t), nil, log.New(testWriter{t}, "", 0))

	got, err := u.ListJobs(context.Background(), JobListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(got))
	}
	if got[0].Title != "Review gateway PR" {
		t.Fatalf("order broken: %q", got[0].Title)
	}
	if got[0].CompletedCount != 1 || got[0].ChecklistTotal != 2 {
		t.Fatalf("checklist counters wrong: %+v", got[0])
	}
}

func TestListJobs_FiltersByQueryAndCategory(t *testing.T) {
	u := NewJobListUsecase(seededJobRepo(t), nil, nil)

	got, err := u.ListJobs(context.Background(), JobListParams{
		Query:      "go",
		Categories: []string{"bugfix"},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Fix login crash" {
		t.Fatalf("filter failed: %+v", got)
	}
}

func TestListJobs_InvalidCategory(t *testing.T) {
	u := NewJobListUsecase(seededJobRepo(t), nil, nil)

	_, err := u.ListJobs(context.Background(), JobListParams{Categories: []string{"design"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListJobs_CachesFilteredResults(t *testing.T) {
	cache := newFakeSearchCache()
	u := NewJobListUsecase(seededJobRepo(t), cache, nil)
	ctx := context.Background()

	params := JobListParams{Query: "tests"}
	first, err := u.ListJobs(ctx, params)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("filtered result not cached")
	}

	second, err := u.ListJobs(ctx, params)
	if err != nil {
		t.Fatalf("cached list: %v", err)
	}
	if len(second) != len(first) || second[0].ID != first[0].ID {
		t.Fatalf("cache hit diverged: %+v vs %+v", second, first)
	}
}

func TestListJobs_CacheKeepsWhitespaceQueriesApart(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryJobRepository()
	j := job.Job{ID: uuid.New(), Title: "django upgrade", Category: job.CategoryFeature, Status: job.StatusOpen, DueDate: time.Now().Add(24 * time.Hour)}
	if err := repo.Save(ctx, j); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cache := newFakeSearchCache()
	u := NewJobListUsecase(repo, cache, nil)

	// "go" hits "django" as a substring; " go" must not ride its cache entry.
	first, err := u.ListJobs(ctx, JobListParams{Query: "go"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 job for %q, got %d", "go", len(first))
	}

	second, err := u.ListJobs(ctx, JobListParams{Query: " go"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("query %q served %d jobs from another query's cache entry", " go", len(second))
	}
}

func TestListJobs_UnfilteredListSkipsCache(t *testing.T) {
	cache := newFakeSearchCache()
	u := NewJobListUsecase(seededJobRepo(t), cache, nil)

	if _, err := u.ListJobs(context.Background(), JobListParams{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cache.entries) != 0 {
		t.Fatalf("unfiltered list should not be cached")
	}
}

// testWriter routes usecase log output through t.Log.
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
