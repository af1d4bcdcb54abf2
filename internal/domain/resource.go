package domain

import (
	"maps"
	"strings"
)

// Field describes one attribute of a resource.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// Validate checks the field definition and collects all errors.
func (f Field) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	} else if len(f.Name) > MaxFieldNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "too long"})
	} else if !IsPathSafe(f.Name) {
		errs = append(errs, FieldError{Field: "name", Message: "must not contain spaces, slashes or control characters"})
	}
	if !f.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "must be one of string, number, boolean, null, undefined"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Resource is a named collection of field schemas owned by a project.
// The name is immutable once created.
type Resource struct {
	Name   string
	Fields []Field
}

// FieldIndex returns the position of the field called name, or -1.
func (r *Resource) FieldIndex(name string) int {
	for i, f := range r.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// AddField appends a new field. Field names are unique within a resource.
func (r *Resource) AddField(f Field) error {
	f.Name = strings.TrimSpace(f.Name)
	if err := f.Validate(); err != nil {
		return err
	}
	if r.FieldIndex(f.Name) >= 0 {
		return NewValidationError("name", "field already exists")
	}
	r.Fields = append(r.Fields, f)
	return nil
}

// UpdateField replaces the field currently called originalName (or f.Name
// when originalName is empty). Renaming onto another existing field is
// rejected. Stored record data is never touched.
func (r *Resource) UpdateField(originalName string, f Field) error {
	f.Name = strings.TrimSpace(f.Name)
	if err := f.Validate(); err != nil {
		return err
	}

	target := strings.TrimSpace(originalName)
	if target == "" {
		target = f.Name
	}

	idx := r.FieldIndex(target)
	if idx < 0 {
		return ErrNotFound
	}
	if f.Name != target && r.FieldIndex(f.Name) >= 0 {
		return NewValidationError("name", "field already exists")
	}

	r.Fields[idx] = f
	return nil
}

// RemoveField deletes the field called name.
func (r *Resource) RemoveField(name string) error {
	idx := r.FieldIndex(name)
	if idx < 0 {
		return ErrNotFound
	}
	r.Fields = append(r.Fields[:idx], r.Fields[idx+1:]...)
	return nil
}

// MissingRequired returns, in declaration order, every required field whose
// value in data is absent or null.
func (r *Resource) MissingRequired(data map[string]any) []string {
	var missing []string
	for _, f := range r.Fields {
		if !f.Required {
			continue
		}
		if v, ok := data[f.Name]; !ok || v == nil {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// Shape validates input for a create or full replace and returns the
// projection of input onto the declared fields. Keys not declared on the
// resource are dropped; declared keys absent from input are omitted.
func (r *Resource) Shape(input map[string]any) (map[string]any, error) {
	if err := r.checkRequired(input); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(r.Fields))
	for _, f := range r.Fields {
		if v, ok := input[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out, nil
}

// Merge applies a partial update. Declared fields present in patch overwrite
// a copy of existing; everything else in existing is kept, including keys of
// fields that were removed from the schema since. The required check runs
// on the merged result.
func (r *Resource) Merge(existing, patch map[string]any) (map[string]any, error) {
	merged := make(map[string]any, len(existing)+len(patch))
	maps.Copy(merged, existing)

	for _, f := range r.Fields {
		if v, ok := patch[f.Name]; ok {
			merged[f.Name] = v
		}
	}

	if err := r.checkRequired(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (r *Resource) checkRequired(data map[string]any) error {
	missing := r.MissingRequired(data)
	if len(missing) == 0 {
		return nil
	}

	errs := make([]FieldError, len(missing))
	for i, name := range missing {
		errs[i] = FieldError{Field: name, Message: "required"}
	}
	return NewValidationErrors(errs)
}
