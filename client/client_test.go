package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/opsdesk/opsdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/items", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.Item{{ID: uuid.New(), Name: "Widget"}})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	items := c.ListItems(context.Background())

	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
}

func TestListItems_FailureYieldsEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "connection refused"})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	items := c.ListItems(context.Background())

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetCustomer_NotFoundYieldsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Customer not found"})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	assert.Nil(t, c.GetCustomer(context.Background(), uuid.NewString()))
}

func TestCreateAgent(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/agents", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Support Bot", body["name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Agent{ID: id, Name: "Support Bot", Model: "gpt-4"})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	agent := c.CreateAgent(context.Background(), map[string]any{"name": "Support Bot", "model": "gpt-4"})

	require.NotNil(t, agent)
	assert.Equal(t, id, agent.ID)
}

func TestCreateAgent_ValidationFailureYieldsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Name and model are required"})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	assert.Nil(t, c.CreateAgent(context.Background(), map[string]any{}))
}

func TestDeleteEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	assert.True(t, c.DeleteEvent(context.Background(), uuid.NewString()))
}

func TestDeleteEvent_FailureYieldsFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "connection refused"})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	assert.False(t, c.DeleteEvent(context.Background(), uuid.NewString()))
}

func TestUnreachableServer(t *testing.T) {
	c := New("http://127.0.0.1:1", zap.NewNop())

	assert.Empty(t, c.ListAgents(context.Background()))
	assert.Nil(t, c.GetItem(context.Background(), uuid.NewString()))
	assert.False(t, c.DeleteCustomer(context.Background(), uuid.NewString()))
}
