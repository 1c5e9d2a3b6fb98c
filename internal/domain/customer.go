package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer statuses.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusPending  = "pending"
)

// Customer tiers.
const (
	CustomerTierFree       = "free"
	CustomerTierBasic      = "basic"
	CustomerTierPremium    = "premium"
	CustomerTierEnterprise = "enterprise"
)

type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Status    string    `json:"status"`
	Tier      string    `json:"tier"`
	Notes     *string   `json:"notes"`
	Metadata  Metadata  `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
