package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/opsdesk/opsdesk/internal/domain"
	"github.com/opsdesk/opsdesk/internal/store"
)

// emailPattern is the minimal local@domain.tld check; anything stricter
// belongs to a verification flow, not a CRUD endpoint.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CustomerService struct {
	store domain.CustomerStore
}

func NewCustomerService(s domain.CustomerStore) *CustomerService {
	return &CustomerService{store: s}
}

type CreateCustomerRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    *string         `json:"phone"`
	Company  *string         `json:"company"`
	Status   string          `json:"status"`
	Tier     string          `json:"tier"`
	Notes    *string         `json:"notes"`
	Metadata domain.Metadata `json:"metadata"`
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.store.List(ctx)
}

func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	if req.Name == "" || req.Email == "" {
		return nil, validationErr("Name and email are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, validationErr("Invalid email format")
	}

	customer := &domain.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Status:   req.Status,
		Tier:     req.Tier,
		Notes:    req.Notes,
		Metadata: req.Metadata,
	}
	if customer.Status == "" {
		customer.Status = domain.CustomerStatusPending
	}
	if customer.Tier == "" {
		customer.Tier = domain.CustomerTierFree
	}
	if customer.Metadata == nil {
		customer.Metadata = domain.Metadata{}
	}
	if !oneOf(customer.Status, domain.CustomerStatusActive, domain.CustomerStatusInactive, domain.CustomerStatusPending) {
		return nil, validationErr("Invalid status")
	}
	if !oneOf(customer.Tier, domain.CustomerTierFree, domain.CustomerTierBasic, domain.CustomerTierPremium, domain.CustomerTierEnterprise) {
		return nil, validationErr("Invalid tier")
	}

	if err := s.store.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Customer, error) {
	if !stringField(fields, "status", domain.CustomerStatusActive, domain.CustomerStatusInactive, domain.CustomerStatusPending) {
		return nil, validationErr("Invalid status")
	}
	if !stringField(fields, "tier", domain.CustomerTierFree, domain.CustomerTierBasic, domain.CustomerTierPremium, domain.CustomerTierEnterprise) {
		return nil, validationErr("Invalid tier")
	}
	if v, ok := fields["email"]; ok {
		email, isStr := v.(string)
		if !isStr || !emailPattern.MatchString(email) {
			return nil, validationErr("Invalid email format")
		}
	}

	c, err := s.store.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Delete is idempotent: removing an id that matches no row is still a
// success.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.store.Delete(ctx, id)
	return err
}
