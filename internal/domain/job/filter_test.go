package job

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func boardFixture() []Job {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []Job{
		{ID: uuid.New(), Title: "Review gateway PR", RepoName: "acme/gateway", Skills: []string{"Go", "JWT"}, Category: CategoryReview, Status: StatusOpen, DueDate: due},
		{ID: uuid.New(), Title: "Add API tests", RepoName: "acme/api", Skills: []string{"Go", "Testing"}, Category: CategoryTesting, Status: StatusOpen, DueDate: due},
		{ID: uuid.New(), Title: "Ship dark mode", RepoName: "acme/frontend", Skills: []string{"TypeScript"}, Category: CategoryFeature, Status: StatusInProgress, DueDate: due},
		{ID: uuid.New(), Title: "Fix login crash", RepoName: "acme/auth", Skills: []string{"Go"}, Category: CategoryBugfix, Status: StatusOpen, DueDate: due},
	}
}

func TestFilter_EmptyInputsReturnAllInOrder(t *testing.T) {
	jobs := boardFixture()

	got := Filter(jobs, "", nil)

	if len(got) != len(jobs) {
		t.Fatalf("expected %d jobs, got %d", len(jobs), len(got))
	}
	for i := range jobs {
		if got[i].ID != jobs[i].ID {
			t.Fatalf("order changed at index %d", i)
		}
	}
}

func TestFilter_QueryMatchesTitleRepoAndSkills(t *testing.T) {
	jobs := boardFixture()

	byTitle := Filter(jobs, "GATEWAY pr", nil)
	if len(byTitle) != 1 || byTitle[0].Title != "Review gateway PR" {
		t.Fatalf("title match failed: %+v", byTitle)
	}

	byRepo := Filter(jobs, "acme/frontend", nil)
	if len(byRepo) != 1 || byRepo[0].Title != "Ship dark mode" {
		t.Fatalf("repo match failed: %+v", byRepo)
	}

	bySkill := Filter(jobs, "typescript", nil)
	if len(bySkill) != 1 || bySkill[0].Title != "Ship dark mode" {
		t.Fatalf("skill match failed: %+v", bySkill)
	}

	if got := Filter(jobs, "nonexistent", nil); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFilter_CategorySubset(t *testing.T) {
	jobs := boardFixture()

	got := Filter(jobs, "", []Category{CategoryTesting})

	if len(got) != 1 {
		t.Fatalf("expected 1 job, got %d", len(got))
	}
	if got[0].Category != CategoryTesting {
		t.Fatalf("expected testing category, got %s", got[0].Category)
	}
}

func TestFilter_QueryAndCategoryCombine(t *testing.T) {
	jobs := boardFixture()

	// "go" matches three jobs by skill; only one is a bugfix.
	got := Filter(jobs, "go", []Category{CategoryBugfix})

	if len(got) != 1 || got[0].Title != "Fix login crash" {
		t.Fatalf("combined filter failed: %+v", got)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	jobs := boardFixture()
	query := "go"
	cats := []Category{CategoryReview, CategoryTesting}

	once := Filter(jobs, query, cats)
	twice := Filter(once, query, cats)

	if len(once) != len(twice) {
		t.Fatalf("idempotence broken: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("idempotence broken at index %d", i)
		}
	}
}
