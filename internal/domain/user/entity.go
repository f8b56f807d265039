package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string

	// Skills the user has declared on their profile, matched against job
	// requirements on the detail view.
	Skills []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
