package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/auth"
	"github.com/heartmarshall/mockapi-backend/internal/domain"
	"github.com/heartmarshall/mockapi-backend/internal/service/record"
)

// APIKeyHeader carries the project key on public data requests.
const APIKeyHeader = "x-api-key"

// recordService defines the minimal interface needed by DataHandler.
type recordService interface {
	List(ctx context.Context, t record.Target, req domain.PageRequest) (domain.Page[map[string]any], error)
	Create(ctx context.Context, t record.Target, input map[string]any) (map[string]any, error)
	Get(ctx context.Context, t record.Target, id uuid.UUID) (map[string]any, error)
	Replace(ctx context.Context, t record.Target, id uuid.UUID, input map[string]any) (map[string]any, error)
	Patch(ctx context.Context, t record.Target, id uuid.UUID, patch map[string]any) (map[string]any, error)
	Delete(ctx context.Context, t record.Target, id uuid.UUID) error
}

// DataHandler serves the public CRUD API of a project's resources.
type DataHandler struct {
	svc recordService
	log *slog.Logger
}

// NewDataHandler creates a DataHandler.
func NewDataHandler(svc recordService, logger *slog.Logger) *DataHandler {
	return &DataHandler{svc: svc, log: logger.With("handler", "data")}
}

// target builds the addressed resource from the path and the API key. The
// key is checked first so a request without a usable key is always a 401,
// whatever its path.
func target(r *http.Request) (record.Target, error) {
	key := r.Header.Get(APIKeyHeader)
	if !auth.IsAPIKeyFormat(key) {
		return record.Target{}, domain.ErrUnauthorized
	}
	projectID, err := uuidParam(r, "projectId")
	if err != nil {
		return record.Target{}, err
	}
	return record.Target{
		ProjectID: projectID,
		APIKey:    key,
		Resource:  chi.URLParam(r, "resource"),
	}, nil
}

func identity(m map[string]any) map[string]any { return m }

// List handles GET /api/{projectId}/{resource}.
func (h *DataHandler) List(w http.ResponseWriter, r *http.Request) {
	t, err := target(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	req := domain.ParsePageRequest(q.Get("page"), q.Get("limit"), q.Get("sort"), q.Get("order"))

	page, err := h.svc.List(r.Context(), t, req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, identity))
}

// Create handles POST /api/{projectId}/{resource}.
func (h *DataHandler) Create(w http.ResponseWriter, r *http.Request) {
	t, err := target(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input, err := decodeObject(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out, err := h.svc.Create(r.Context(), t, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// Get handles GET /api/{projectId}/{resource}/{id}.
func (h *DataHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(t record.Target, id uuid.UUID) (any, error) {
		return h.svc.Get(r.Context(), t, id)
	})
}

// Replace handles PUT /api/{projectId}/{resource}/{id}.
func (h *DataHandler) Replace(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(t record.Target, id uuid.UUID) (any, error) {
		input, err := decodeObject(r)
		if err != nil {
			return nil, err
		}
		return h.svc.Replace(r.Context(), t, id, input)
	})
}

// Patch handles PATCH /api/{projectId}/{resource}/{id}.
func (h *DataHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(t record.Target, id uuid.UUID) (any, error) {
		patch, err := decodeObject(r)
		if err != nil {
			return nil, err
		}
		return h.svc.Patch(r.Context(), t, id, patch)
	})
}

// Delete handles DELETE /api/{projectId}/{resource}/{id}.
func (h *DataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(t record.Target, id uuid.UUID) (any, error) {
		if err := h.svc.Delete(r.Context(), t, id); err != nil {
			return nil, err
		}
		return messageResponse{Message: "Record deleted"}, nil
	})
}

// withID writes the result of op with status 200. A malformed record id is
// passed on as uuid.Nil, which matches no record, so it ends in 404 only
// after the key and resource checks.
func (h *DataHandler) withID(w http.ResponseWriter, r *http.Request, op func(record.Target, uuid.UUID) (any, error)) {
	t, err := target(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, _ := uuid.Parse(chi.URLParam(r, "id"))

	out, err := op(t, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
