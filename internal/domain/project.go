package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project owns an API key and an ordered list of resource definitions.
// The API key is generated once at creation and never regenerated.
type Project struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	APIKey      string
	Resources   []Resource
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Resource returns the resource declared under name. Names are compared
// after normalization, so "Todos" finds the stored "todos".
func (p *Project) Resource(name string) (*Resource, bool) {
	name = NormalizeText(name)
	for i := range p.Resources {
		if p.Resources[i].Name == name {
			return &p.Resources[i], true
		}
	}
	return nil, false
}

// AddResource declares a new resource with no fields. The stored name is
// lowercased; a name that already exists in any casing is rejected.
func (p *Project) AddResource(name string) (*Resource, error) {
	normalized := NormalizeText(name)
	if normalized == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(normalized) > MaxResourceNameLength {
		return nil, NewValidationError("name", "too long")
	}
	if !IsPathSafe(normalized) {
		return nil, NewValidationError("name", "must not contain spaces, slashes or control characters")
	}
	if _, exists := p.Resource(normalized); exists {
		return nil, NewValidationError("name", "resource already exists")
	}

	p.Resources = append(p.Resources, Resource{Name: normalized, Fields: []Field{}})
	return &p.Resources[len(p.Resources)-1], nil
}

const (
	MaxProjectNameLength        = 200
	MaxProjectDescriptionLength = 2000
	MaxResourceNameLength       = 100
	MaxFieldNameLength          = 100
)
