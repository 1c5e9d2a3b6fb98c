package domain

import (
	"context"

	"github.com/google/uuid"
)

// Store interfaces abstract the database so services can be tested against
// fakes. Update takes the changed columns as a map; implementations must
// only apply whitelisted columns and must report a missing row as not-found.
// Delete reports how many rows were removed so the caller can decide whether
// a zero-row delete is an error.

type AgentStore interface {
	List(ctx context.Context) ([]Agent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Agent, error)
	Create(ctx context.Context, a *Agent) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Agent, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type ItemStore interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	Create(ctx context.Context, i *Item) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Item, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type EventStore interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Event, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type CustomerStore interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Customer, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
