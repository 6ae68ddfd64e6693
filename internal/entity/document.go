package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is one uploaded file belonging to a project. The upload path
// owns it; the orchestrator only writes classification results and the
// skip reason.
type Document struct {
	ID              uuid.UUID  `json:"id"`
	ProjectID       uuid.UUID  `json:"project_id"`
	FileURL         string     `json:"file_url"` // opaque storage locator
	FileType        string     `json:"file_type"`
	Status          string     `json:"status"`
	DocTypeScore    *float64   `json:"doc_type_score,omitempty"`
	DocTypeDetected *string    `json:"doc_type_detected,omitempty"`
	DocTypeReason   *string    `json:"doc_type_reason,omitempty"`
	SkipReason      *string    `json:"skip_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// Project owns documents and carries per-project compliance requirements
// plus an optional encrypted extraction-backend API key override.
type Project struct {
	ID               uuid.UUID           `json:"id"`
	WorkspaceID      uuid.UUID           `json:"workspace_id"`
	Name             string              `json:"name"`
	Requirements     ProjectRequirements `json:"requirements,omitempty"`
	APIKeyCiphertext *string             `json:"-"`
	CreatedAt        time.Time           `json:"created_at"`
}

// Workspace groups projects; it may carry its own encrypted API key
// override, consulted when the project has none.
type Workspace struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	APIKeyCiphertext *string   `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}
