package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/opsdesk/opsdesk/internal/service"
)

// ResourceService is the contract every record kind's service satisfies:
// T is the record type, C the create request type. Update receives the
// changed fields as decoded JSON with the identity fields already stripped.
type ResourceService[T any, C any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, req C) (*T, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResourceHandler serves the five CRUD operations for one record kind. The
// four resource families differ only in table, required fields and defaults,
// all of which live in the kind's service; the HTTP contract is expressed
// once here.
type ResourceHandler[T any, C any] struct {
	kind string // capitalized kind name, e.g. "Agent", used in error bodies
	svc  ResourceService[T, C]
}

func NewResourceHandler[T any, C any](kind string, svc ResourceService[T, C]) *ResourceHandler[T, C] {
	return &ResourceHandler[T, C]{kind: kind, svc: svc}
}

// Routes mounts the CRUD surface on a fresh sub-router.
func (h *ResourceHandler[T, C]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Patch("/", h.Update)
		r.Delete("/", h.Delete)
	})
	return r
}

func (h *ResourceHandler[T, C]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []T{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *ResourceHandler[T, C]) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	record, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, h.kind+" not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *ResourceHandler[T, C]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.svc.Create(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *ResourceHandler[T, C]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An update can never retarget a row or forge identity fields; the
	// store-maintained timestamps are equally off limits.
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	record, err := h.svc.Update(r.Context(), id, fields)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, h.kind+" not found")
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Message)
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *ResourceHandler[T, C]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *ResourceHandler[T, C]) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+strings.ToLower(h.kind)+" id")
		return uuid.Nil, false
	}
	return id, true
}
