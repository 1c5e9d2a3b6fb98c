package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/opsdesk/opsdesk/internal/domain"
	"github.com/opsdesk/opsdesk/internal/store"
)

type AgentService struct {
	store domain.AgentStore
}

func NewAgentService(s domain.AgentStore) *AgentService {
	return &AgentService{store: s}
}

type CreateAgentRequest struct {
	Name          string                     `json:"name"`
	Description   string                     `json:"description"`
	Status        string                     `json:"status"`
	Model         string                     `json:"model"`
	Configuration *domain.AgentConfiguration `json:"configuration"`
}

func (s *AgentService) List(ctx context.Context) ([]domain.Agent, error) {
	return s.store.List(ctx)
}

func (s *AgentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error) {
	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create validates required fields, fills per-field defaults (explicit
// caller values always win) and inserts the row. A missing configuration is
// replaced wholesale by the default one, never deep-merged.
func (s *AgentService) Create(ctx context.Context, req CreateAgentRequest) (*domain.Agent, error) {
	if req.Name == "" || req.Model == "" {
		return nil, validationErr("Name and model are required")
	}

	agent := &domain.Agent{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Model:       req.Model,
	}
	if agent.Status == "" {
		agent.Status = domain.AgentStatusInactive
	}
	if !oneOf(agent.Status, domain.AgentStatusActive, domain.AgentStatusInactive, domain.AgentStatusError) {
		return nil, validationErr("Invalid status")
	}
	if req.Configuration != nil {
		agent.Configuration = *req.Configuration
	} else {
		agent.Configuration = domain.DefaultAgentConfiguration()
	}

	if err := s.store.Create(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *AgentService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Agent, error) {
	if !stringField(fields, "status", domain.AgentStatusActive, domain.AgentStatusInactive, domain.AgentStatusError) {
		return nil, validationErr("Invalid status")
	}

	a, err := s.store.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Delete is idempotent: removing an id that matches no row is still a
// success. The store reports rows affected, which is ignored here.
func (s *AgentService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.store.Delete(ctx, id)
	return err
}
