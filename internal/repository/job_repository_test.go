package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"content-platform/internal/domain/job"

	"github.com/google/uuid"
)

func newJob(title string) job.Job {
	return job.Job{
		ID:        uuid.New(),
		Title:     title,
		Category:  job.CategoryReview,
		Status:    job.StatusOpen,
		DueDate:   time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
}

func TestMemoryJobRepository_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		if err := repo.Save(ctx, newJob(title)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(titles) {
		t.Fatalf("expected %d jobs, got %d", len(titles), len(got))
	}
	for i, title := range titles {
		if got[i].Title != title {
			t.Fatalf("order broken at %d: got %q", i, got[i].Title)
		}
	}
}

func TestMemoryJobRepository_SaveReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()

	a := newJob("a")
	b := newJob("b")
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("save b: %v", err)
	}

	a.Title = "a updated"
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("resave a: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("upsert appended instead of replacing: %d jobs", len(got))
	}
	if got[0].ID != a.ID || got[0].Title != "a updated" {
		t.Fatalf("replaced job lost its slot: %+v", got[0])
	}
	if got[1].ID != b.ID {
		t.Fatalf("sibling moved: %+v", got[1])
	}
}

func TestMemoryJobRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()

	j := newJob("target")
	if err := repo.Save(ctx, j); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != j.ID || got.Title != "target" {
		t.Fatalf("wrong job: %+v", got)
	}

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestMemoryJobRepository_ReadsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()

	j := newJob("isolated")
	j.Skills = []string{"Go"}
	j.Checklist = []job.ChecklistItem{{ID: uuid.New(), Label: "step"}}
	if err := repo.Save(ctx, j); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Skills[0] = "Rust"
	got.Checklist[0].Completed = true

	again, err := repo.GetByID(ctx, j.ID)
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.Skills[0] != "Go" || again.Checklist[0].Completed {
		t.Fatalf("stored job aliased by a read: %+v", again)
	}
}

func TestMemoryJobRepository_RejectsNilID(t *testing.T) {
	repo := NewMemoryJobRepository()

	if err := repo.Save(context.Background(), job.Job{Title: "no id"}); err == nil {
		t.Fatalf("expected error for nil id")
	}
}
