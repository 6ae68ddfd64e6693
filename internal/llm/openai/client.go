package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/llm"
)

// completionFields is the JSON structure the prompt asks the model for.
type completionFields struct {
	Fields []struct {
		Name       string            `json:"name"`
		Value      json.RawMessage   `json:"value"`
		Confidence *float32          `json:"confidence,omitempty"`
		Evidence   []entity.Evidence `json:"evidence,omitempty"`
	} `json:"fields"`
}

// Extract implements llm.Extractor using text-only chat/completions.
// A malformed or empty completion degrades to an empty field map; the
// validator then marks every required field MISSING.
func (c *Client) Extract(ctx context.Context, req llm.ExtractRequest) (llm.ExtractResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", req.Model,
		"temp", req.Temperature,
		"prompt_len", len(req.Prompt),
	)

	body := map[string]any{
		"model":           req.Model,
		"temperature":     req.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "user", "content": req.Prompt + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + req.Schema.JSON()},
		},
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ExtractResult{}, fmt.Errorf("%w: %v", common.ErrExtractionBackend, httpErr)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ExtractResult{}, fmt.Errorf("%w: decode response: %v", common.ErrExtractionBackend, err)
	}

	usage := llm.Usage{
		InputTokens:  cc.Usage.PromptTokens,
		OutputTokens: cc.Usage.CompletionTokens,
		TotalTokens:  cc.Usage.TotalTokens,
	}
	result := llm.ExtractResult{
		Data:       map[string]json.RawMessage{},
		Confidence: map[string]float32{},
		Evidence:   map[string][]entity.Evidence{},
		Usage:      usage,
		Cost:       llm.CostUSD(req.Model, usage),
	}

	if len(cc.Choices) == 0 {
		c.log.Warn("llm.extract.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return result, nil
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	if err := req.Schema.Validate([]byte(content)); err != nil {
		c.log.Warn("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return result, nil
	}

	var parsed completionFields
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		c.log.Warn("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return result, nil
	}

	for _, f := range parsed.Fields {
		result.Data[f.Name] = f.Value
		if f.Confidence != nil {
			result.Confidence[f.Name] = *f.Confidence
		}
		if len(f.Evidence) > 0 {
			result.Evidence[f.Name] = f.Evidence
		}
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"fields", len(result.Data),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"cost_usd", result.Cost,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

