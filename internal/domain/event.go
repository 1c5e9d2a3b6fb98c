package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event statuses.
const (
	EventStatusScheduled  = "scheduled"
	EventStatusInProgress = "in_progress"
	EventStatusCompleted  = "completed"
	EventStatusCancelled  = "cancelled"
)

// Event priorities.
const (
	EventPriorityLow    = "low"
	EventPriorityMedium = "medium"
	EventPriorityHigh   = "high"
)

// Event is a scheduled occurrence. AgentID is a weak reference: it names an
// agent without owning it, and the referenced agent is never validated to
// exist.
type Event struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Location    *string    `json:"location"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AgentID     *uuid.UUID `json:"agent_id"`
	Metadata    Metadata   `json:"metadata"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
