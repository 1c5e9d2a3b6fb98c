package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opsdesk/opsdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEventStore mocks the EventStore interface.
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventStore) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	if args.Error(0) == nil {
		e.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockEventStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Event, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestEventService_CreateDefaults(t *testing.T) {
	mockStore := new(MockEventStore)
	mockStore.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	s := NewEventService(mockStore)
	event, err := s.Create(context.Background(), CreateEventRequest{
		Title:     "Quarterly review",
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.EventStatusScheduled, event.Status)
	assert.Equal(t, domain.EventPriorityMedium, event.Priority)
	assert.NotNil(t, event.Metadata)
	assert.Nil(t, event.AgentID)
	mockStore.AssertExpectations(t)
}

func TestEventService_CreateMissingStartTime(t *testing.T) {
	mockStore := new(MockEventStore)

	s := NewEventService(mockStore)
	_, err := s.Create(context.Background(), CreateEventRequest{Title: "Quarterly review"})

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "Title and start time are required", verr.Message)
	mockStore.AssertNotCalled(t, "Create")
}

func TestEventService_UpdateCoercesTimestamps(t *testing.T) {
	id := uuid.New()
	mockStore := new(MockEventStore)
	mockStore.On("Update", mock.Anything, id, mock.MatchedBy(func(fields map[string]any) bool {
		_, startIsTime := fields["start_time"].(time.Time)
		endPtr, endIsPtr := fields["end_time"].(*time.Time)
		return startIsTime && endIsPtr && endPtr != nil
	})).Return(&domain.Event{ID: id}, nil)

	s := NewEventService(mockStore)
	_, err := s.Update(context.Background(), id, map[string]any{
		"start_time": "2026-09-01T10:00:00Z",
		"end_time":   "2026-09-01T11:00:00Z",
	})

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestEventService_UpdateNullEndTime(t *testing.T) {
	id := uuid.New()
	mockStore := new(MockEventStore)
	mockStore.On("Update", mock.Anything, id, mock.MatchedBy(func(fields map[string]any) bool {
		endPtr, ok := fields["end_time"].(*time.Time)
		return ok && endPtr == nil
	})).Return(&domain.Event{ID: id}, nil)

	s := NewEventService(mockStore)
	_, err := s.Update(context.Background(), id, map[string]any{"end_time": nil})

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestEventService_UpdateInvalidAgentID(t *testing.T) {
	mockStore := new(MockEventStore)

	s := NewEventService(mockStore)
	_, err := s.Update(context.Background(), uuid.New(), map[string]any{"agent_id": "not-a-uuid"})

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	mockStore.AssertNotCalled(t, "Update")
}

func TestEventService_UpdateInvalidPriority(t *testing.T) {
	mockStore := new(MockEventStore)

	s := NewEventService(mockStore)
	_, err := s.Update(context.Background(), uuid.New(), map[string]any{"priority": "urgent"})

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	mockStore.AssertNotCalled(t, "Update")
}

func TestEventService_DeleteIdempotent(t *testing.T) {
	id := uuid.New()
	mockStore := new(MockEventStore)
	mockStore.On("Delete", mock.Anything, id).Return(int64(0), nil)

	s := NewEventService(mockStore)
	assert.NoError(t, s.Delete(context.Background(), id))
	mockStore.AssertExpectations(t)
}
