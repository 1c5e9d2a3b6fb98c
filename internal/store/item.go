package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdesk/opsdesk/internal/domain"
)

const itemColumns = "id, name, description, category, properties, status, created_at, updated_at"

var itemUpdatable = []string{"name", "description", "category", "properties", "status"}

type ItemStore struct {
	db *pgxpool.Pool
}

func NewItemStore(db *pgxpool.Pool) *ItemStore {
	return &ItemStore{db: db}
}

// List returns all items, newest first.
func (s *ItemStore) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var i domain.Item
		if err := scanItem(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (s *ItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	i := &domain.Item{}
	row := s.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id,
	)
	if err := scanItem(row, i); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

func (s *ItemStore) Create(ctx context.Context, i *domain.Item) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO items (name, description, category, properties, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		i.Name, i.Description, i.Category, i.Properties, i.Status,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

func (s *ItemStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Item, error) {
	sql, args, err := buildUpdate("items", itemColumns, itemUpdatable, fields, id)
	if errors.Is(err, errNoUpdatableFields) {
		return s.GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	i := &domain.Item{}
	if err := scanItem(s.db.QueryRow(ctx, sql, args...), i); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

func (s *ItemStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanItem(row pgx.Row, i *domain.Item) error {
	return row.Scan(&i.ID, &i.Name, &i.Description, &i.Category, &i.Properties, &i.Status, &i.CreatedAt, &i.UpdatedAt)
}
