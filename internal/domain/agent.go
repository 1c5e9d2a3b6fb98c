package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agent statuses.
const (
	AgentStatusActive   = "active"
	AgentStatusInactive = "inactive"
	AgentStatusError    = "error"
)

type Agent struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Status        string             `json:"status"`
	Model         string             `json:"model"`
	Configuration AgentConfiguration `json:"configuration"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type AgentConfiguration struct {
	PromptTemplate string      `json:"prompt_template"`
	Temperature    float64     `json:"temperature"`
	MaxTokens      int         `json:"max_tokens"`
	SystemMessage  string      `json:"system_message"`
	Tools          []AgentTool `json:"tools"`
	Metadata       Metadata    `json:"metadata"`
}

type AgentTool struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Parameters  Metadata `json:"parameters"`
	Enabled     bool     `json:"enabled"`
}

// DefaultAgentConfiguration is used wholesale when a create payload carries
// no configuration at all. It is never deep-merged with a partial one.
func DefaultAgentConfiguration() AgentConfiguration {
	return AgentConfiguration{
		PromptTemplate: "",
		Temperature:    0.7,
		MaxTokens:      1000,
		SystemMessage:  "",
		Tools:          []AgentTool{},
		Metadata:       Metadata{},
	}
}
