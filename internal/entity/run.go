package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
)

// ProjectRequirements are per-project compliance knobs consumed by the
// validator (min_threshold, boolean_required) and the template rule checker.
type ProjectRequirements struct {
	// MinThresholds maps a field name to its minimum acceptable numeric value.
	MinThresholds map[string]float64 `json:"min_thresholds,omitempty"`
	// Flags holds boolean requirements keyed "require_<fieldName>".
	Flags map[string]bool `json:"flags,omitempty"`
}

// RunSettings is the extraction configuration frozen into a run at launch.
type RunSettings struct {
	Provider       string                   `json:"provider"` // extraction provider id, e.g. "openai"
	Model          string                   `json:"model"`
	Temperature    float32                  `json:"temperature"`
	MaxTokens      int                      `json:"max_tokens,omitempty"`
	ChunkingMethod constants.ChunkingMethod `json:"chunking_method"`
	ChunkSize      int                      `json:"chunk_size,omitempty"`
	ChunkOverlap   int                      `json:"chunk_overlap,omitempty"`
	// MaxCostPerRun halts extraction for remaining documents once the run's
	// accumulated cost reaches it. Zero means no limit.
	MaxCostPerRun float64             `json:"max_cost_per_run,omitempty"`
	Requirements  ProjectRequirements `json:"requirements,omitempty"`
}

// Run represents one pipeline execution over a project's documents.
type Run struct {
	ID               uuid.UUID           `json:"id"`
	ProjectID        uuid.UUID           `json:"project_id"`
	Status           constants.RunStatus `json:"status"`
	StartedAt        *time.Time          `json:"started_at,omitempty"`
	FinishedAt       *time.Time          `json:"finished_at,omitempty"`
	SettingsSnapshot RunSettings         `json:"settings_snapshot"`
	TemplateSnapshot Template            `json:"template_snapshot"`
	CostEstimate     float64             `json:"cost_estimate"`
	ProcessedCount   int                 `json:"processed_count"`
	SkippedCount     int                 `json:"skipped_count"`
	ErrorMessage     *string             `json:"error_message,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// RunStep is the audited stage-execution record for one document in a run.
type RunStep struct {
	ID         uuid.UUID            `json:"id"`
	RunID      uuid.UUID            `json:"run_id"`
	DocumentID uuid.UUID            `json:"document_id"`
	StepName   constants.StepName   `json:"step_name"`
	Status     constants.StepStatus `json:"status"`
	Input      []byte               `json:"input,omitempty"`
	Output     []byte               `json:"output,omitempty"`
	Error      *string              `json:"error,omitempty"`
	StartedAt  *time.Time           `json:"started_at,omitempty"`
	FinishedAt *time.Time           `json:"finished_at,omitempty"`
}
