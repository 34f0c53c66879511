package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is the inbound half of a chat audit pair: the caller's
// identity and the raw message, stored before classification.
type ChatMessage struct {
	ID        uuid.UUID `db:"id"`
	UserName  string    `db:"user_name"`
	UserEmail string    `db:"user_email"`
	UserPhone string    `db:"user_phone"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// AdvisorResponse is the outbound half, linked to its ChatMessage by
// MessageID. Never read back by the service.
type AdvisorResponse struct {
	ID              uuid.UUID `db:"id"`
	MessageID       uuid.UUID `db:"message_id"`
	Response        string    `db:"response"`
	Recommendations []string  `db:"recommendations"`
	CreatedAt       time.Time `db:"created_at"`
}
