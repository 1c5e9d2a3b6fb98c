package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdesk/opsdesk/internal/domain"
)

const eventColumns = "id, title, description, start_time, end_time, location, status, priority, agent_id, metadata, created_at, updated_at"

var eventUpdatable = []string{"title", "description", "start_time", "end_time", "location", "status", "priority", "agent_id", "metadata"}

type EventStore struct {
	db *pgxpool.Pool
}

func NewEventStore(db *pgxpool.Pool) *EventStore {
	return &EventStore{db: db}
}

// List returns all events in chronological order by start time.
func (s *EventStore) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY start_time ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *EventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	e := &domain.Event{}
	row := s.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id,
	)
	if err := scanEvent(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EventStore) Create(ctx context.Context, e *domain.Event) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO events (title, description, start_time, end_time, location, status, priority, agent_id, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		e.Title, e.Description, e.StartTime, e.EndTime, e.Location, e.Status, e.Priority, e.AgentID, e.Metadata,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (s *EventStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Event, error) {
	sql, args, err := buildUpdate("events", eventColumns, eventUpdatable, fields, id)
	if errors.Is(err, errNoUpdatableFields) {
		return s.GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	e := &domain.Event{}
	if err := scanEvent(s.db.QueryRow(ctx, sql, args...), e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EventStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanEvent(row pgx.Row, e *domain.Event) error {
	return row.Scan(&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.Location, &e.Status, &e.Priority, &e.AgentID, &e.Metadata, &e.CreatedAt, &e.UpdatedAt)
}
