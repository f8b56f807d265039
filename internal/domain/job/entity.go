package job

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryReview        Category = "review"
	CategoryTesting       Category = "testing"
	CategoryFeature       Category = "feature"
	CategoryBugfix        Category = "bugfix"
	CategoryDocumentation Category = "documentation"
)

func Categories() []Category {
	return []Category{
		CategoryReview,
		CategoryTesting,
		CategoryFeature,
		CategoryBugfix,
		CategoryDocumentation,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryReview, CategoryTesting, CategoryFeature, CategoryBugfix, CategoryDocumentation:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// ChecklistItem is a single completable sub-task of a Job. IDs are unique
// within the owning job.
type ChecklistItem struct {
	ID        uuid.UUID
	Label     string
	Completed bool
}

// Job is a unit of work posted on the board. ID and CreatedAt are immutable
// once assigned; everything else may be replaced on save.
type Job struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Guidelines    string
	GuidelinesURL *string
	GithubPRURL   *string
	Award         float64
	Skills        []string
	DueDate       time.Time
	Category      Category
	Status        Status
	Checklist     []ChecklistItem
	RepoName      string
	RepoURL       string
	CreatedAt     time.Time
}

// Clone returns a deep copy so callers can mutate slices without aliasing the
// stored value.
func (j Job) Clone() Job {
	out := j
	if j.Skills != nil {
		out.Skills = make([]string, len(j.Skills))
		copy(out.Skills, j.Skills)
	}
	if j.Checklist != nil {
		out.Checklist = make([]ChecklistItem, len(j.Checklist))
		copy(out.Checklist, j.Checklist)
	}
	if j.GuidelinesURL != nil {
		v := *j.GuidelinesURL
		out.GuidelinesURL = &v
	}
	if j.GithubPRURL != nil {
		v := *j.GithubPRURL
		out.GithubPRURL = &v
	}
	return out
}
