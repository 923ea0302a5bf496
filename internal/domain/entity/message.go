package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a write-once contact form submission. It has no
// lifecycle; admins read it out-of-band.
type ContactMessage struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Subject     string
	Body        string
	SubmittedAt time.Time
}
