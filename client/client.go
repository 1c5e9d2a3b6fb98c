// Package client is the accessor layer UI code uses to call the admin API.
// Every failure (transport, decode, or any non-2xx status) is logged and
// then normalized away: list calls return an empty slice, single-record
// calls return nil and delete calls return false. Callers only ever see
// success-shaped results and cannot distinguish not-found from a server
// error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/opsdesk/opsdesk/internal/domain"
	"go.uber.org/zap"
)

// AdminClient calls the resource endpoints of one opsdesk server.
type AdminClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a client for the server at baseURL (e.g. "http://localhost:8080").
// A nil logger disables diagnostics.
func New(baseURL string, logger *zap.Logger) *AdminClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// Agents

func (c *AdminClient) ListAgents(ctx context.Context) []domain.Agent {
	return list[domain.Agent](ctx, c, "/api/agents")
}

func (c *AdminClient) GetAgent(ctx context.Context, id string) *domain.Agent {
	return do[domain.Agent](ctx, c, http.MethodGet, "/api/agents/"+id, nil)
}

func (c *AdminClient) CreateAgent(ctx context.Context, payload any) *domain.Agent {
	return do[domain.Agent](ctx, c, http.MethodPost, "/api/agents", payload)
}

func (c *AdminClient) UpdateAgent(ctx context.Context, id string, payload any) *domain.Agent {
	return do[domain.Agent](ctx, c, http.MethodPatch, "/api/agents/"+id, payload)
}

func (c *AdminClient) DeleteAgent(ctx context.Context, id string) bool {
	return c.delete(ctx, "/api/agents/"+id)
}

// Items

func (c *AdminClient) ListItems(ctx context.Context) []domain.Item {
	return list[domain.Item](ctx, c, "/api/items")
}

func (c *AdminClient) GetItem(ctx context.Context, id string) *domain.Item {
	return do[domain.Item](ctx, c, http.MethodGet, "/api/items/"+id, nil)
}

func (c *AdminClient) CreateItem(ctx context.Context, payload any) *domain.Item {
	return do[domain.Item](ctx, c, http.MethodPost, "/api/items", payload)
}

func (c *AdminClient) UpdateItem(ctx context.Context, id string, payload any) *domain.Item {
	return do[domain.Item](ctx, c, http.MethodPatch, "/api/items/"+id, payload)
}

func (c *AdminClient) DeleteItem(ctx context.Context, id string) bool {
	return c.delete(ctx, "/api/items/"+id)
}

// Events

func (c *AdminClient) ListEvents(ctx context.Context) []domain.Event {
	return list[domain.Event](ctx, c, "/api/events")
}

func (c *AdminClient) GetEvent(ctx context.Context, id string) *domain.Event {
	return do[domain.Event](ctx, c, http.MethodGet, "/api/events/"+id, nil)
}

func (c *AdminClient) CreateEvent(ctx context.Context, payload any) *domain.Event {
	return do[domain.Event](ctx, c, http.MethodPost, "/api/events", payload)
}

func (c *AdminClient) UpdateEvent(ctx context.Context, id string, payload any) *domain.Event {
	return do[domain.Event](ctx, c, http.MethodPatch, "/api/events/"+id, payload)
}

func (c *AdminClient) DeleteEvent(ctx context.Context, id string) bool {
	return c.delete(ctx, "/api/events/"+id)
}

// Customers

func (c *AdminClient) ListCustomers(ctx context.Context) []domain.Customer {
	return list[domain.Customer](ctx, c, "/api/customers")
}

func (c *AdminClient) GetCustomer(ctx context.Context, id string) *domain.Customer {
	return do[domain.Customer](ctx, c, http.MethodGet, "/api/customers/"+id, nil)
}

func (c *AdminClient) CreateCustomer(ctx context.Context, payload any) *domain.Customer {
	return do[domain.Customer](ctx, c, http.MethodPost, "/api/customers", payload)
}

func (c *AdminClient) UpdateCustomer(ctx context.Context, id string, payload any) *domain.Customer {
	return do[domain.Customer](ctx, c, http.MethodPatch, "/api/customers/"+id, payload)
}

func (c *AdminClient) DeleteCustomer(ctx context.Context, id string) bool {
	return c.delete(ctx, "/api/customers/"+id)
}

// list fetches a collection; any failure yields an empty slice.
func list[T any](ctx context.Context, c *AdminClient, path string) []T {
	records := do[[]T](ctx, c, http.MethodGet, path, nil)
	if records == nil {
		return []T{}
	}
	return *records
}

// do performs one request and decodes the response body into T. Any failure
// is logged and collapsed into nil.
func do[T any](ctx context.Context, c *AdminClient, method, path string, payload any) *T {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			c.logger.Error("failed to encode request", zap.String("path", path), zap.Error(err))
			return nil
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		c.logger.Error("failed to build request", zap.String("path", path), zap.Error(err))
		return nil
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("error", errorBody(resp.Body)),
		)
		return nil
	}

	record := new(T)
	if err := json.NewDecoder(resp.Body).Decode(record); err != nil {
		c.logger.Error("failed to decode response", zap.String("path", path), zap.Error(err))
		return nil
	}
	return record
}

// delete performs a DELETE; any failure yields false.
func (c *AdminClient) delete(ctx context.Context, path string) bool {
	result := do[struct {
		Success bool `json:"success"`
	}](ctx, c, http.MethodDelete, path, nil)
	return result != nil && result.Success
}

// errorBody extracts the {"error": ...} message for logging, falling back to
// the raw body.
func errorBody(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return fmt.Sprintf("unreadable body: %v", err)
	}
	var parsed struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &parsed) == nil && parsed.Error != "" {
		return parsed.Error
	}
	return string(raw)
}
