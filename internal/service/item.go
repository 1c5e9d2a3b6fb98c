package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/opsdesk/opsdesk/internal/domain"
	"github.com/opsdesk/opsdesk/internal/store"
)

type ItemService struct {
	store domain.ItemStore
}

func NewItemService(s domain.ItemStore) *ItemService {
	return &ItemService{store: s}
}

type CreateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Properties  domain.Metadata `json:"properties"`
	Status      string          `json:"status"`
}

func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.store.List(ctx)
}

func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	i, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*domain.Item, error) {
	if req.Name == "" {
		return nil, validationErr("Name is required")
	}

	item := &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Properties:  req.Properties,
		Status:      req.Status,
	}
	if item.Category == "" {
		item.Category = domain.DefaultItemCategory
	}
	if item.Properties == nil {
		item.Properties = domain.Metadata{}
	}
	if item.Status == "" {
		item.Status = domain.ItemStatusActive
	}
	if !oneOf(item.Status, domain.ItemStatusActive, domain.ItemStatusInactive, domain.ItemStatusArchived) {
		return nil, validationErr("Invalid status")
	}

	if err := s.store.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Item, error) {
	if !stringField(fields, "status", domain.ItemStatusActive, domain.ItemStatusInactive, domain.ItemStatusArchived) {
		return nil, validationErr("Invalid status")
	}

	i, err := s.store.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

// Delete is idempotent: removing an id that matches no row is still a
// success.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.store.Delete(ctx, id)
	return err
}
