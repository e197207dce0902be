package dto

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateRequestDTO struct {
	Type             string `json:"type" validate:"required,type_demande"`
	Category         string `json:"category"`
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Location         string `json:"location" validate:"required"`
	Priority         string `json:"priority" validate:"omitempty,priorite"`
	ServiceDemandeur string `json:"service_demandeur" validate:"required,service_interne"`
}

type ShortProfileDTO struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Service string    `json:"service"`
}

// RequestDTO : vue enrichie d'une demande, avec le demandeur et, le cas
// échéant, l'assigné. La jointure ne modifie jamais l'état stocké.
type RequestDTO struct {
	ID               uuid.UUID        `json:"id"`
	Type             string           `json:"type"`
	Category         null.String      `json:"category"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Location         string           `json:"location"`
	Priority         string           `json:"priority"`
	ServiceDemandeur string           `json:"service_demandeur"`
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	ClosedAt         null.Time        `json:"closed_at"`
	Demandeur        ShortProfileDTO  `json:"demandeur"`
	Assigne          *ShortProfileDTO `json:"assigne,omitempty"`
}

type TakeRequestResultDTO struct {
	PrisEnCharge bool `json:"pris_en_charge"`
}

// ReferentielsDTO : listes servies telles quelles au client pour ses
// formulaires. La catégorie reste libre côté serveur.
type ReferentielsDTO struct {
	Services           []string `json:"services"`
	IncidentCategories []string `json:"incident_categories"`
	OrderCategories    []string `json:"order_categories"`
	Priorities         []string `json:"priorities"`
}
