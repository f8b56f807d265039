package seeder

import (
	"time"

	"content-platform/internal/domain/job"

	"github.com/google/uuid"
)

// SeedJobs returns the demo job collection the board starts with. Due dates
// are relative to the supplied now so the generator stays pure and testable.
func SeedJobs(now time.Time) []job.Job {
	prURL := "https://github.com/content-platform/gateway/pull/412"

	return []job.Job{
		{
			ID:          uuid.New(),
			Title:       "Review authentication middleware PR",
			Description: "Review the JWT middleware changes in the gateway service and leave inline feedback.",
			Guidelines:  "Focus on token validation paths and error handling. Check for timing-safe comparisons.",
			GithubPRURL: &prURL,
			Award:       120,
			Skills:      []string{"Go", "JWT", "Security"},
			DueDate:     now.Add(5 * 24 * time.Hour),
			Category:    job.CategoryReview,
			Status:      job.StatusOpen,
			Checklist: []job.ChecklistItem{
				{ID: uuid.New(), Label: "Read the PR description and linked issue"},
				{ID: uuid.New(), Label: "Verify token expiry handling"},
				{ID: uuid.New(), Label: "Leave review comments"},
			},
			RepoName:  "content-platform/gateway",
			RepoURL:   "https://github.com/content-platform/gateway",
			CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Title:       "Add integration tests for the experts API",
			Description: "Cover the list and detail endpoints with integration tests, including the not-found paths.",
			Guidelines:  "Use the existing test harness. Every endpoint needs at least one failure-path test.",
			Award:       200,
			Skills:      []string{"Go", "Testing", "REST"},
			DueDate:     now.Add(10 * 24 * time.Hour),
			Category:    job.CategoryTesting,
			Status:      job.StatusOpen,
			Checklist: []job.ChecklistItem{
				{ID: uuid.New(), Label: "List endpoint happy path"},
				{ID: uuid.New(), Label: "Detail endpoint 404"},
				{ID: uuid.New(), Label: "CI green"},
			},
			RepoName:  "content-platform/experts-api",
			RepoURL:   "https://github.com/content-platform/experts-api",
			CreatedAt: now.Add(-1 * 24 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Title:       "Implement interview reminder emails",
			Description: "Send a reminder email 24 hours before a scheduled interview.",
			Guidelines:  "Reuse the notification templates. Reminders must be idempotent per interview.",
			Award:       350,
			Skills:      []string{"Go", "Email", "Cron"},
			DueDate:     now.Add(14 * 24 * time.Hour),
			Category:    job.CategoryFeature,
			Status:      job.StatusInProgress,
			Checklist: []job.ChecklistItem{
				{ID: uuid.New(), Label: "Template for reminder email", Completed: true},
				{ID: uuid.New(), Label: "Scheduler hook"},
				{ID: uuid.New(), Label: "Dedup guard"},
			},
			RepoName:  "content-platform/notifications",
			RepoURL:   "https://github.com/content-platform/notifications",
			CreatedAt: now.Add(-6 * 24 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Title:       "Fix duplicate contributor rows in repo analysis",
			Description: "Contributors appear twice when a repo is analyzed concurrently from two tabs.",
			Guidelines:  "Reproduce first. The fix likely belongs in the analysis job deduplication.",
			Award:       150,
			Skills:      []string{"Go", "Concurrency"},
			DueDate:     now.Add(7 * 24 * time.Hour),
			Category:    job.CategoryBugfix,
			Status:      job.StatusOpen,
			Checklist: []job.ChecklistItem{
				{ID: uuid.New(), Label: "Reproduce with two concurrent requests"},
				{ID: uuid.New(), Label: "Fix and add regression test"},
			},
			RepoName:  "content-platform/analyzer",
			RepoURL:   "https://github.com/content-platform/analyzer",
			CreatedAt: now.Add(-4 * 24 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Title:       "Document the webhook payloads",
			Description: "Write reference docs for the outgoing webhook payloads, with examples per event type.",
			Guidelines:  "Markdown in the docs repo. One page per event family.",
			Award:       80,
			Skills:      []string{"Technical Writing", "Markdown"},
			DueDate:     now.Add(21 * 24 * time.Hour),
			Category:    job.CategoryDocumentation,
			Status:      job.StatusCompleted,
			Checklist: []job.ChecklistItem{
				{ID: uuid.New(), Label: "Draft event list", Completed: true},
				{ID: uuid.New(), Label: "Payload examples", Completed: true},
			},
			RepoName:  "content-platform/docs",
			RepoURL:   "https://github.com/content-platform/docs",
			CreatedAt: now.Add(-12 * 24 * time.Hour),
		},
	}
}
