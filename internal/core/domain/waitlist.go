package domain

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry is a single signup captured by the public waitlist endpoint.
type WaitlistEntry struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

func NewWaitlistEntry(email string) *WaitlistEntry {
	return &WaitlistEntry{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}
