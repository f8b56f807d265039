package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultAward    = 50.0
	DefaultCategory = CategoryReview
	DefaultStatus   = StatusOpen

	// DefaultDueIn is applied when a draft carries no due date.
	DefaultDueIn = 14 * 24 * time.Hour
)

// Draft carries the fields of the create/edit form. Nil fields fall back to
// defaults at build time.
type Draft struct {
	Title         string
	Description   string
	Guidelines    string
	GuidelinesURL *string
	GithubPRURL   *string
	Award         *float64
	Skills        []string
	DueDate       *time.Time
	Category      *Category
	Status        *Status
	Checklist     []ChecklistItemDraft
	RepoName      string
	RepoURL       string
}

// ChecklistItemDraft is a checklist row as submitted from the form. Items
// without an ID are new and get one generated at build time; items carrying
// an ID keep it.
type ChecklistItemDraft struct {
	ID        *uuid.UUID
	Label     string
	Completed bool
}

// Build produces a fully populated Job from a draft. When existing is non-nil
// its ID and CreatedAt are preserved (update); otherwise both are freshly
// generated (create). The caller owns placing the result into the collection.
func Build(d Draft, existing *Job, now time.Time) Job {
	j := Job{
		Title:       d.Title,
		Description: d.Description,
		Guidelines:  d.Guidelines,
		RepoName:    d.RepoName,
		RepoURL:     d.RepoURL,
		Award:       DefaultAward,
		DueDate:     now.Add(DefaultDueIn),
		Category:    DefaultCategory,
		Status:      DefaultStatus,
		Skills:      []string{},
		Checklist:   []ChecklistItem{},
	}

	if d.GuidelinesURL != nil {
		v := *d.GuidelinesURL
		j.GuidelinesURL = &v
	}
	if d.GithubPRURL != nil {
		v := *d.GithubPRURL
		j.GithubPRURL = &v
	}
	if d.Award != nil {
		j.Award = *d.Award
	}
	if d.DueDate != nil {
		j.DueDate = *d.DueDate
	}
	if d.Category != nil {
		j.Category = *d.Category
	}
	if d.Status != nil {
		j.Status = *d.Status
	}
	if d.Skills != nil {
		j.Skills = make([]string, len(d.Skills))
		copy(j.Skills, d.Skills)
	}

	for _, it := range d.Checklist {
		id := uuid.New()
		if it.ID != nil && *it.ID != uuid.Nil {
			id = *it.ID
		}
		j.Checklist = append(j.Checklist, ChecklistItem{
			ID:        id,
			Label:     it.Label,
			Completed: it.Completed,
		})
	}

	if existing != nil {
		j.ID = existing.ID
		j.CreatedAt = existing.CreatedAt
		return j
	}

	j.ID = uuid.New()
	j.CreatedAt = now
	return j
}
