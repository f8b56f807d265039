package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type JobSavedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Title     string `json:"title"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

type JobAppliedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Title     string `json:"title"`
	Applicant string `json:"applicant,omitempty"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyJobSaved broadcasts a create/update event. No-op when no hub is wired.
func NotifyJobSaved(jobID uuid.UUID, title, action string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := JobSavedEvent{
		Type:      "job_saved",
		JobID:     jobID.String(),
		Title:     title,
		Action:    action,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

// NotifyJobApplied broadcasts an application event, fire-and-forget.
func NotifyJobApplied(jobID uuid.UUID, title, applicant string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := JobAppliedEvent{
		Type:      "job_applied",
		JobID:     jobID.String(),
		Title:     title,
		Applicant: applicant,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
