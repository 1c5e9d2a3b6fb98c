package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdesk/opsdesk/internal/domain"
)

const agentColumns = "id, name, description, status, model, configuration, created_at, updated_at"

var agentUpdatable = []string{"name", "description", "status", "model", "configuration"}

type AgentStore struct {
	db *pgxpool.Pool
}

func NewAgentStore(db *pgxpool.Pool) *AgentStore {
	return &AgentStore{db: db}
}

// List returns all agents, newest first.
func (s *AgentStore) List(ctx context.Context) ([]domain.Agent, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+agentColumns+` FROM agents ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []domain.Agent
	for rows.Next() {
		var a domain.Agent
		if err := scanAgent(rows, &a); err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (s *AgentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error) {
	a := &domain.Agent{}
	row := s.db.QueryRow(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE id = $1`, id,
	)
	if err := scanAgent(row, a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AgentStore) Create(ctx context.Context, a *domain.Agent) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO agents (name, description, status, model, configuration)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Description, a.Status, a.Model, a.Configuration,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (s *AgentStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Agent, error) {
	sql, args, err := buildUpdate("agents", agentColumns, agentUpdatable, fields, id)
	if errors.Is(err, errNoUpdatableFields) {
		return s.GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	a := &domain.Agent{}
	if err := scanAgent(s.db.QueryRow(ctx, sql, args...), a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AgentStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM agents WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanAgent(row pgx.Row, a *domain.Agent) error {
	return row.Scan(&a.ID, &a.Name, &a.Description, &a.Status, &a.Model, &a.Configuration, &a.CreatedAt, &a.UpdatedAt)
}
