package llm

import (
	"context"
	"encoding/json"

	"github.com/veridoc-ai/veridoc/internal/entity"
)

// Usage is the token accounting reported by the extraction backend.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// ExtractRequest carries everything one extraction call needs. The prompt
// already has the chunk text substituted in, and the schema is compiled
// once per run.
type ExtractRequest struct {
	Prompt      string
	Schema      *Schema
	Model       string
	Temperature float32
	MaxTokens   int
}

// ExtractResult is the per-field outcome of one extraction call.
type ExtractResult struct {
	Data       map[string]json.RawMessage
	Confidence map[string]float32
	Evidence   map[string][]entity.Evidence
	Usage      Usage
	Cost       float64
}

// Extractor is the capability interface the orchestrator depends on.
// Concrete backends register themselves with the provider registry.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (ExtractResult, error)
}

// ProviderConfig configures a concrete extraction backend.
type ProviderConfig struct {
	APIKey      string
	BaseURL     string
	TimeoutSecs int
}
