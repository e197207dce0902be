package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// Request : une demande de support, incident technique ou commande de matériel.
//
// Invariants portés par la table (voir migrations) :
//   - status suit ouvert -> en_cours -> termine, sans retour ;
//   - assigned_to est nul ssi status = ouvert, et immuable une fois posé ;
//   - closed_at est renseigné ssi status = termine.
type Request struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	UserID           uuid.UUID     `json:"user_id" db:"user_id"`
	Type             string        `json:"type" db:"type"`
	Category         null.String   `json:"category" db:"category"`
	Title            string        `json:"title" db:"title"`
	Description      string        `json:"description" db:"description"`
	Location         string        `json:"location" db:"location"`
	Priority         string        `json:"priority" db:"priority"`
	ServiceDemandeur string        `json:"service_demandeur" db:"service_demandeur"`
	Status           string        `json:"status" db:"status"`
	AssignedTo       uuid.NullUUID `json:"assigned_to" db:"assigned_to"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	ClosedAt         null.Time     `json:"closed_at" db:"closed_at"`
}
