package entities

import (
	"time"

	"github.com/google/uuid"
)

// Profile : identité d'un membre du personnel, avec son service et son rôle.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Service   string    `json:"service" db:"service"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
