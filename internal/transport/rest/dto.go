package rest

import (
	"time"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type fieldDTO struct {
	Name     string           `json:"name"`
	Type     domain.FieldType `json:"type"`
	Required bool             `json:"required"`
}

type resourceResponse struct {
	Name   string     `json:"name"`
	Fields []fieldDTO `json:"fields"`
}

type projectResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	APIKey      string             `json:"apiKey"`
	Resources   []resourceResponse `json:"resources"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type storedRecordResponse struct {
	ID           string         `json:"id"`
	ResourceName string         `json:"resourceName"`
	Data         map[string]any `json:"data"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type pageResponse[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toResourceResponse(r domain.Resource) resourceResponse {
	fields := make([]fieldDTO, len(r.Fields))
	for i, f := range r.Fields {
		fields[i] = fieldDTO{Name: f.Name, Type: f.Type, Required: f.Required}
	}
	return resourceResponse{Name: r.Name, Fields: fields}
}

func toProjectResponse(p *domain.Project) projectResponse {
	resources := make([]resourceResponse, len(p.Resources))
	for i, r := range p.Resources {
		resources[i] = toResourceResponse(r)
	}
	return projectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		APIKey:      p.APIKey,
		Resources:   resources,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toStoredRecordResponse(r domain.Record) storedRecordResponse {
	data := r.Data
	if data == nil {
		data = map[string]any{}
	}
	return storedRecordResponse{
		ID:           r.ID.String(),
		ResourceName: r.ResourceName,
		Data:         data,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toPageResponse[T, U any](p domain.Page[T], conv func(T) U) pageResponse[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = conv(it)
	}
	return pageResponse[U]{
		Data:       items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}
