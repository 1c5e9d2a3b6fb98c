package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdesk/opsdesk/internal/domain"
)

const customerColumns = "id, name, email, phone, company, status, tier, notes, metadata, created_at, updated_at"

var customerUpdatable = []string{"name", "email", "phone", "company", "status", "tier", "notes", "metadata"}

type CustomerStore struct {
	db *pgxpool.Pool
}

func NewCustomerStore(db *pgxpool.Pool) *CustomerStore {
	return &CustomerStore{db: db}
}

// List returns all customers, newest first.
func (s *CustomerStore) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *CustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c := &domain.Customer{}
	row := s.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id,
	)
	if err := scanCustomer(row, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CustomerStore) Create(ctx context.Context, c *domain.Customer) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO customers (name, email, phone, company, status, tier, notes, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Email, c.Phone, c.Company, c.Status, c.Tier, c.Notes, c.Metadata,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return err
}

func (s *CustomerStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Customer, error) {
	sql, args, err := buildUpdate("customers", customerColumns, customerUpdatable, fields, id)
	if errors.Is(err, errNoUpdatableFields) {
		return s.GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	c := &domain.Customer{}
	if err := scanCustomer(s.db.QueryRow(ctx, sql, args...), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CustomerStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanCustomer(row pgx.Row, c *domain.Customer) error {
	return row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Status, &c.Tier, &c.Notes, &c.Metadata, &c.CreatedAt, &c.UpdatedAt)
}
