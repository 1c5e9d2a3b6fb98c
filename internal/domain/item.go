package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item statuses.
const (
	ItemStatusActive   = "active"
	ItemStatusInactive = "inactive"
	ItemStatusArchived = "archived"
)

// DefaultItemCategory is assigned when a create payload has no category.
const DefaultItemCategory = "general"

type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Properties  Metadata  `json:"properties"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
