package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account owns a vocabulary.
type Account struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
