package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/compliance"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/llm"
)

// execStage runs one pipeline stage with step-level persistence: PENDING row
// on entry, RUNNING during execution, COMPLETED with the JSON output or
// FAILED with the error message. A COMPLETED step from a prior invocation of
// the same run short-circuits the stage and replays its stored output, which
// makes re-enqueued runs safe against duplicate records.
func execStage[T any](
	ctx context.Context,
	o *Orchestrator,
	runID, docID uuid.UUID,
	name constants.StepName,
	input any,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	prior, err := o.deps.Steps.FindCompleted(ctx, runID, docID, name)
	if err != nil {
		return zero, fmt.Errorf("step %s: lookup prior run: %w", name, err)
	}
	if prior != nil {
		var replay T
		if len(prior.Output) > 0 {
			if err := json.Unmarshal(prior.Output, &replay); err != nil {
				return zero, fmt.Errorf("step %s: replay stored output: %w", name, err)
			}
		}
		o.log.Info("step.replayed", "run_id", runID, "document_id", docID, "step", name)
		return replay, nil
	}

	var inputJSON []byte
	if input != nil {
		var merr error
		inputJSON, merr = json.Marshal(input)
		if merr != nil {
			o.log.Warn("step.input.encode_failed", "step", name, "err", merr)
			inputJSON = nil
		}
	}
	step, err := o.deps.Steps.Create(ctx, runID, docID, name, inputJSON)
	if err != nil {
		return zero, fmt.Errorf("step %s: create: %w", name, err)
	}
	if err := o.deps.Steps.MarkRunning(ctx, step.ID); err != nil {
		return zero, fmt.Errorf("step %s: mark running: %w", name, err)
	}

	out, err := fn(ctx)
	if err != nil {
		if markErr := o.deps.Steps.MarkFailed(ctx, step.ID, err.Error()); markErr != nil {
			o.log.Error("step.persist_failed", "step", name, "err", markErr)
		}
		return zero, fmt.Errorf("step %s: %w", name, err)
	}

	// A COMPLETED step with no output would replay as a zero value, so an
	// unencodable output fails the stage instead.
	outJSON, err := json.Marshal(out)
	if err != nil {
		if markErr := o.deps.Steps.MarkFailed(ctx, step.ID, "encode output: "+err.Error()); markErr != nil {
			o.log.Error("step.persist_failed", "step", name, "err", markErr)
		}
		return zero, fmt.Errorf("step %s: encode output: %w", name, err)
	}
	if err := o.deps.Steps.MarkCompleted(ctx, step.ID, outJSON); err != nil {
		return zero, fmt.Errorf("step %s: mark completed: %w", name, err)
	}
	return out, nil
}

// validatedField is the validation stage's per-field output, carried into
// persist_results.
type validatedField struct {
	FieldName  string                   `json:"field_name"`
	FieldType  string                   `json:"field_type"`
	Value      json.RawMessage          `json:"value,omitempty"`
	Confidence float32                  `json:"confidence"`
	Evidence   []entity.Evidence        `json:"evidence,omitempty"`
	Status     constants.FieldStatus    `json:"status"`
	Errors     []entity.ValidationError `json:"errors,omitempty"`
	Required   bool                     `json:"required"`
}

// validateFields runs the validator over every template field, whether or not
// the extraction returned a value for it.
func (o *Orchestrator) validateFields(env *runEnv, extraction llm.ExtractResult) []validatedField {
	out := make([]validatedField, 0, len(env.template.Fields))
	for _, f := range env.template.Fields {
		raw := extraction.Data[f.Name]
		value := entity.ValueFromJSON(f.Type, raw)
		confidence := extraction.Confidence[f.Name]
		rules := env.template.RulesForField(f.Name)
		res := o.deps.Validator.ValidateField(f.Name, value, confidence, rules, env.settings.Requirements)
		out = append(out, validatedField{
			FieldName:  f.Name,
			FieldType:  f.Type,
			Value:      value.ToJSON(),
			Confidence: res.Confidence,
			Evidence:   extraction.Evidence[f.Name],
			Status:     res.FieldStatus,
			Errors:     res.Errors,
			Required:   f.Required,
		})
	}
	return out
}

// persistOutput is the audit payload of the persist_results step.
type persistOutput struct {
	RecordID     uuid.UUID              `json:"record_id"`
	RecordStatus constants.RecordStatus `json:"record_status"`
	FailedRules  []string               `json:"failed_rules,omitempty"`
}

// persistResults creates the record and its fields, runs the compliance
// aggregator and finalizes the record status.
func (o *Orchestrator) persistResults(
	ctx context.Context,
	runID, docID uuid.UUID,
	env *runEnv,
	extraction llm.ExtractResult,
	validated []validatedField,
) (persistOutput, error) {
	record, err := o.deps.Records.CreateRecord(ctx, runID, docID)
	if err != nil {
		return persistOutput{}, fmt.Errorf("create record: %w", err)
	}

	verdicts := make([]compliance.FieldVerdict, 0, len(validated))
	values := make(map[string]entity.FieldValue, len(validated))
	for _, vf := range validated {
		if _, err := o.deps.Records.CreateField(ctx, &entity.ExtractionField{
			RecordID:         record.ID,
			FieldName:        vf.FieldName,
			FieldType:        vf.FieldType,
			ExtractedValue:   vf.Value,
			Confidence:       vf.Confidence,
			Evidence:         vf.Evidence,
			FieldStatus:      vf.Status,
			ValidationErrors: vf.Errors,
		}); err != nil {
			return persistOutput{}, fmt.Errorf("create field %s: %w", vf.FieldName, err)
		}
		verdicts = append(verdicts, compliance.FieldVerdict{
			FieldName:   vf.FieldName,
			FieldStatus: vf.Status,
			IsRequired:  vf.Required,
		})
		values[vf.FieldName] = entity.ValueFromJSON(vf.FieldType, vf.Value)
	}

	violations := compliance.CheckTemplateRules(env.template, values, env.settings.Requirements)
	verdict := compliance.ComputeRecordStatus(verdicts, violations)
	if err := o.deps.Records.FinalizeRecord(ctx, record.ID, verdict.RecordStatus, verdict.FailedRules); err != nil {
		return persistOutput{}, fmt.Errorf("finalize record: %w", err)
	}
	return persistOutput{
		RecordID:     record.ID,
		RecordStatus: verdict.RecordStatus,
		FailedRules:  verdict.FailedRules,
	}, nil
}
