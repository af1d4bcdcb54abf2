package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
	"github.com/heartmarshall/mockapi-backend/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	CreateResource(ctx context.Context, projectID uuid.UUID, input project.CreateResourceInput) (*domain.Resource, error)
	AddField(ctx context.Context, projectID uuid.UUID, resource string, input project.FieldInput) (*domain.Resource, error)
	UpdateField(ctx context.Context, projectID uuid.UUID, resource string, input project.FieldInput) (*domain.Resource, error)
	DeleteField(ctx context.Context, projectID uuid.UUID, resource, field string) (*domain.Resource, error)
	Generate(ctx context.Context, projectID uuid.UUID, resource string, input project.GenerateInput) (int, error)
	ListData(ctx context.Context, projectID uuid.UUID, resource string, req domain.PageRequest) (domain.Page[domain.Record], error)
	DeleteData(ctx context.Context, projectID uuid.UUID, resource string, recordID uuid.UUID) error
}

// ProjectHandler serves the session-authenticated management API.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type createResourceRequest struct {
	Name string `json:"name"`
}

type fieldRequest struct {
	Name         string           `json:"name"`
	Type         domain.FieldType `json:"type"`
	Required     bool             `json:"required"`
	OriginalName string           `json:"originalName"`
}

type generateRequest struct {
	Count *int `json:"count"`
}

type generateResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]projectResponse, len(projects))
	for i := range projects {
		out[i] = toProjectResponse(&projects[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CreateProject(r.Context(), project.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Project deleted"})
}

// CreateResource handles POST /api/projects/{id}/resources.
func (h *ProjectHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createResourceRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.CreateResource(r.Context(), id, project.CreateResourceInput{Name: req.Name})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResourceResponse(*res))
}

// AddField handles POST /api/projects/{id}/resources/{resource}/fields.
func (h *ProjectHandler) AddField(w http.ResponseWriter, r *http.Request) {
	h.writeField(w, r, http.StatusCreated, h.svc.AddField)
}

// UpdateField handles PUT /api/projects/{id}/resources/{resource}/fields.
func (h *ProjectHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	h.writeField(w, r, http.StatusOK, h.svc.UpdateField)
}

func (h *ProjectHandler) writeField(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	op func(context.Context, uuid.UUID, string, project.FieldInput) (*domain.Resource, error),
) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req fieldRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := op(r.Context(), id, chi.URLParam(r, "resource"), project.FieldInput{
		Name:         req.Name,
		Type:         req.Type,
		Required:     req.Required,
		OriginalName: req.OriginalName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, toResourceResponse(*res))
}

// DeleteField handles DELETE /api/projects/{id}/resources/{resource}/fields/{field}.
func (h *ProjectHandler) DeleteField(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.DeleteField(r.Context(), id, chi.URLParam(r, "resource"), chi.URLParam(r, "field"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toResourceResponse(*res))
}

// Generate handles POST /api/projects/{id}/resources/{resource}/generate.
// An empty body generates the default count.
func (h *ProjectHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req generateRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	n, err := h.svc.Generate(r.Context(), id, chi.URLParam(r, "resource"), project.GenerateInput{Count: req.Count})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, generateResponse{
		Message: fmt.Sprintf("Generated %d records", n),
		Count:   n,
	})
}

// ListData handles GET /api/projects/{id}/resources/{resource}/data.
func (h *ProjectHandler) ListData(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	req := domain.ParsePageRequest(q.Get("page"), q.Get("limit"), q.Get("sort"), q.Get("order"))

	page, err := h.svc.ListData(r.Context(), id, chi.URLParam(r, "resource"), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toStoredRecordResponse))
}

// DeleteData handles DELETE /api/projects/{id}/resources/{resource}/data/{recordId}.
func (h *ProjectHandler) DeleteData(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	recordID, err := uuidParam(r, "recordId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteData(r.Context(), id, chi.URLParam(r, "resource"), recordID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Record deleted"})
}
