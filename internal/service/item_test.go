package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/opsdesk/opsdesk/internal/domain"
	"github.com/opsdesk/opsdesk/internal/store"
)

// mockItemStore implements domain.ItemStore for testing.
type mockItemStore struct {
	items map[uuid.UUID]*domain.Item
}

func newMockItemStore() *mockItemStore {
	return &mockItemStore{items: make(map[uuid.UUID]*domain.Item)}
}

func (m *mockItemStore) List(ctx context.Context) ([]domain.Item, error) {
	var out []domain.Item
	for _, i := range m.items {
		out = append(out, *i)
	}
	return out, nil
}

func (m *mockItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	i, ok := m.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return i, nil
}

func (m *mockItemStore) Create(ctx context.Context, i *domain.Item) error {
	i.ID = uuid.New()
	m.items[i.ID] = i
	return nil
}

func (m *mockItemStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Item, error) {
	i, ok := m.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			i.Name = v.(string)
		case "description":
			i.Description = v.(string)
		case "category":
			i.Category = v.(string)
		case "status":
			i.Status = v.(string)
		}
	}
	return i, nil
}

func (m *mockItemStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.items[id]; !ok {
		return 0, nil
	}
	delete(m.items, id)
	return 1, nil
}

func TestItemService_CreateDefaults(t *testing.T) {
	mockStore := newMockItemStore()
	s := NewItemService(mockStore)
	ctx := context.Background()

	item, err := s.Create(ctx, CreateItemRequest{Name: "Widget"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Description != "" {
		t.Fatalf("expected empty description, got %q", item.Description)
	}
	if item.Category != "general" {
		t.Fatalf("expected category 'general', got %q", item.Category)
	}
	if item.Properties == nil || len(item.Properties) != 0 {
		t.Fatalf("expected empty properties, got %v", item.Properties)
	}
	if item.Status != domain.ItemStatusActive {
		t.Fatalf("expected status 'active', got %q", item.Status)
	}
	if item.ID == uuid.Nil {
		t.Fatal("expected item ID to be set")
	}
}

func TestItemService_CreateCallerValuesWin(t *testing.T) {
	s := NewItemService(newMockItemStore())
	ctx := context.Background()

	item, err := s.Create(ctx, CreateItemRequest{
		Name:     "Widget",
		Category: "hardware",
		Status:   domain.ItemStatusArchived,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Category != "hardware" {
		t.Fatalf("expected category 'hardware', got %q", item.Category)
	}
	if item.Status != domain.ItemStatusArchived {
		t.Fatalf("expected status 'archived', got %q", item.Status)
	}
}

func TestItemService_CreateMissingName(t *testing.T) {
	mockStore := newMockItemStore()
	s := NewItemService(mockStore)
	ctx := context.Background()

	_, err := s.Create(ctx, CreateItemRequest{Category: "hardware"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Name is required" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if len(mockStore.items) != 0 {
		t.Fatal("expected no insert on validation failure")
	}
}

func TestItemService_CreateInvalidStatus(t *testing.T) {
	s := NewItemService(newMockItemStore())
	ctx := context.Background()

	_, err := s.Create(ctx, CreateItemRequest{Name: "Widget", Status: "retired"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestItemService_UpdateStatus(t *testing.T) {
	mockStore := newMockItemStore()
	s := NewItemService(mockStore)
	ctx := context.Background()

	item, err := s.Create(ctx, CreateItemRequest{Name: "Widget"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	updated, err := s.Update(ctx, item.ID, map[string]any{"status": "inactive"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Status != domain.ItemStatusInactive {
		t.Fatalf("expected status 'inactive', got %q", updated.Status)
	}
	if updated.Name != "Widget" {
		t.Fatalf("expected other fields unchanged, name is %q", updated.Name)
	}
}

func TestItemService_UpdateNotFound(t *testing.T) {
	s := NewItemService(newMockItemStore())
	ctx := context.Background()

	_, err := s.Update(ctx, uuid.New(), map[string]any{"status": "inactive"})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestItemService_UpdateInvalidStatus(t *testing.T) {
	mockStore := newMockItemStore()
	s := NewItemService(mockStore)
	ctx := context.Background()

	item, _ := s.Create(ctx, CreateItemRequest{Name: "Widget"})

	_, err := s.Update(ctx, item.ID, map[string]any{"status": "retired"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestItemService_DeleteIdempotent(t *testing.T) {
	s := NewItemService(newMockItemStore())
	ctx := context.Background()

	if err := s.Delete(ctx, uuid.New()); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}
