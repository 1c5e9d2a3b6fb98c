package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/opsdesk/opsdesk/internal/domain"
	"github.com/opsdesk/opsdesk/internal/store"
)

type EventService struct {
	store domain.EventStore
}

func NewEventService(s domain.EventStore) *EventService {
	return &EventService{store: s}
}

type CreateEventRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     *time.Time      `json:"end_time"`
	Location    *string         `json:"location"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	AgentID     *uuid.UUID      `json:"agent_id"`
	Metadata    domain.Metadata `json:"metadata"`
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.store.List(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	e, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create validates required fields and fills defaults. AgentID is taken as
// given: it is a weak reference and the agent it names is not checked to
// exist.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*domain.Event, error) {
	if req.Title == "" || req.StartTime.IsZero() {
		return nil, validationErr("Title and start time are required")
	}

	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Status:      req.Status,
		Priority:    req.Priority,
		AgentID:     req.AgentID,
		Metadata:    req.Metadata,
	}
	if event.Status == "" {
		event.Status = domain.EventStatusScheduled
	}
	if event.Priority == "" {
		event.Priority = domain.EventPriorityMedium
	}
	if event.Metadata == nil {
		event.Metadata = domain.Metadata{}
	}
	if !oneOf(event.Status, domain.EventStatusScheduled, domain.EventStatusInProgress, domain.EventStatusCompleted, domain.EventStatusCancelled) {
		return nil, validationErr("Invalid status")
	}
	if !oneOf(event.Priority, domain.EventPriorityLow, domain.EventPriorityMedium, domain.EventPriorityHigh) {
		return nil, validationErr("Invalid priority")
	}

	if err := s.store.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update coerces the JSON representations of timestamps and the agent
// reference into their column types before handing the field map to the
// store, and rejects enum values outside their allowed sets.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Event, error) {
	if !stringField(fields, "status", domain.EventStatusScheduled, domain.EventStatusInProgress, domain.EventStatusCompleted, domain.EventStatusCancelled) {
		return nil, validationErr("Invalid status")
	}
	if !stringField(fields, "priority", domain.EventPriorityLow, domain.EventPriorityMedium, domain.EventPriorityHigh) {
		return nil, validationErr("Invalid priority")
	}

	if v, ok := fields["start_time"]; ok {
		t, err := parseTimestamp(v)
		if err != nil || t == nil {
			return nil, validationErr("Invalid start time")
		}
		fields["start_time"] = *t
	}
	if v, ok := fields["end_time"]; ok {
		t, err := parseTimestamp(v)
		if err != nil {
			return nil, validationErr("Invalid end time")
		}
		fields["end_time"] = t
	}
	if v, ok := fields["agent_id"]; ok {
		switch av := v.(type) {
		case nil:
			fields["agent_id"] = (*uuid.UUID)(nil)
		case string:
			agentID, err := uuid.Parse(av)
			if err != nil {
				return nil, validationErr("Invalid agent id")
			}
			fields["agent_id"] = agentID
		default:
			return nil, validationErr("Invalid agent id")
		}
	}

	e, err := s.store.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Delete is idempotent: removing an id that matches no row is still a
// success.
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.store.Delete(ctx, id)
	return err
}

// parseTimestamp accepts the JSON forms a timestamp field can arrive in:
// null, or an RFC 3339 string.
func parseTimestamp(v any) (*time.Time, error) {
	switch tv := v.(type) {
	case nil:
		return nil, nil
	case string:
		t, err := time.Parse(time.RFC3339, tv)
		if err != nil {
			return nil, err
		}
		return &t, nil
	case time.Time:
		return &tv, nil
	default:
		return nil, errors.New("not a timestamp")
	}
}
