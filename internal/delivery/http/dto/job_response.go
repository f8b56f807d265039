package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChecklistItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Completed bool      `json:"completed"`
}

type SkillMatchResponse struct {
	MatchingSkills  []string `json:"matching_skills"`
	MatchPercentage int      `json:"match_percentage"`
}

type JobResponse struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Guidelines     string                  `json:"guidelines"`
	GuidelinesURL  *string                 `json:"guidelines_url,omitempty"`
	GithubPRURL    *string                 `json:"github_pr_url,omitempty"`
	Award          float64                 `json:"award"`
	Skills         []string                `json:"skills"`
	DueDate        time.Time               `json:"due_date"`
	Category       string                  `json:"category"`
	Status         string                  `json:"status"`
	Checklist      []ChecklistItemResponse `json:"checklist"`
	CompletedCount int                     `json:"completed_count"`
	RepoName       string                  `json:"repo_name"`
	RepoURL        string                  `json:"repo_url"`
	CreatedAt      time.Time               `json:"created_at"`
	SkillMatch     *SkillMatchResponse     `json:"skill_match,omitempty"`
}
