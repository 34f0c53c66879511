package models

import (
	"time"

	"github.com/google/uuid"
)

type StatusCheck struct {
	ID         uuid.UUID `db:"id"`
	ClientName string    `db:"client_name"`
	CreatedAt  time.Time `db:"created_at"`
}
