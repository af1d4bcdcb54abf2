package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is one stored payload of a resource. It is meaningful only inside
// its (ProjectID, ResourceName) scope. Data is filtered against the schema
// at write time only.
type Record struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	ResourceName string
	Data         map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecordScope identifies the (project, resource) pair every record
// operation is confined to.
type RecordScope struct {
	ProjectID    uuid.UUID
	ResourceName string
}

// Flatten projects the record into its API response shape: the id, every
// stored data key at the top level, and the timestamps. Identity and
// timestamps take precedence over data keys with the same names.
func (r Record) Flatten() map[string]any {
	out := make(map[string]any, len(r.Data)+3)
	for k, v := range r.Data {
		out[k] = v
	}
	out["id"] = r.ID
	out["createdAt"] = r.CreatedAt
	out["updatedAt"] = r.UpdatedAt
	return out
}
