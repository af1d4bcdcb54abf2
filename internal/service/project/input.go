package project

import (
	"strings"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > domain.MaxProjectNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(strings.TrimSpace(i.Description)) > domain.MaxProjectDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateResourceInput holds the parameters for declaring a resource.
type CreateResourceInput struct {
	Name string
}

// FieldInput describes a field to add, or the new state of an existing one.
// OriginalName selects the field to update; empty means Name.
type FieldInput struct {
	Name         string
	Type         domain.FieldType
	Required     bool
	OriginalName string
}

func (i FieldInput) field() domain.Field {
	return domain.Field{Name: i.Name, Type: i.Type, Required: i.Required}
}

// GenerateInput holds the parameters for fixture generation. A nil Count
// means the default count.
type GenerateInput struct {
	Count *int
}
