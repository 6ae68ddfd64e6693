// Package compliance reduces per-field verdicts and domain rule checks
// into one record-level status.
package compliance

import (
	"fmt"
	"strings"
	"time"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/entity"
)

// FieldVerdict is the per-field input to the aggregator.
type FieldVerdict struct {
	FieldName   string
	FieldStatus constants.FieldStatus
	IsRequired  bool
}

// Verdict is the aggregate outcome for one record.
type Verdict struct {
	RecordStatus constants.RecordStatus
	FailedRules  []string
	Summary      string
}

// ComputeRecordStatus reduces field statuses by precedence, then unions in
// the template rule checker's violations. Any violation from either source
// forces NON_COMPLIANT: domain compliance rules take precedence over
// generic field validation.
func ComputeRecordStatus(fields []FieldVerdict, ruleViolations []string) Verdict {
	status := reduce(fields)
	failed := failedRules(fields)
	failed = append(failed, ruleViolations...)

	if len(ruleViolations) > 0 && status != constants.RecordStatusSkipped {
		status = constants.RecordStatusNonCompliant
	}

	return Verdict{
		RecordStatus: status,
		FailedRules:  failed,
		Summary:      summarize(status, fields, failed),
	}
}

func reduce(fields []FieldVerdict) constants.RecordStatus {
	for _, f := range fields {
		if f.FieldStatus == constants.FieldStatusSkippedDocType {
			return constants.RecordStatusSkipped
		}
	}
	for _, f := range fields {
		if (f.IsRequired && f.FieldStatus == constants.FieldStatusMissing) ||
			f.FieldStatus == constants.FieldStatusFailValidation {
			return constants.RecordStatusNonCompliant
		}
	}
	for _, f := range fields {
		if f.FieldStatus == constants.FieldStatusNeedsReview {
			return constants.RecordStatusNeedsReview
		}
	}
	return constants.RecordStatusCompliant
}

func failedRules(fields []FieldVerdict) []string {
	var out []string
	for _, f := range fields {
		switch {
		case f.IsRequired && f.FieldStatus == constants.FieldStatusMissing:
			out = append(out, fmt.Sprintf("required field %q is missing", f.FieldName))
		case f.FieldStatus == constants.FieldStatusFailValidation:
			out = append(out, fmt.Sprintf("field %q failed validation", f.FieldName))
		}
	}
	return out
}

func summarize(status constants.RecordStatus, fields []FieldVerdict, failed []string) string {
	if len(failed) == 0 {
		return fmt.Sprintf("%s: %d fields checked", status, len(fields))
	}
	return fmt.Sprintf("%s: %s", status, strings.Join(failed, "; "))
}

// CheckTemplateRules evaluates the template's domain rules against the raw
// extracted values and project requirements, independently of per-field
// validation. It covers expiration-date-in-past, minimum thresholds, and
// required boolean flags.
func CheckTemplateRules(tpl *entity.Template, values map[string]entity.FieldValue, reqs entity.ProjectRequirements) []string {
	var violations []string
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, rule := range tpl.Validators {
		v, ok := values[rule.FieldName]
		switch rule.Rule {
		case "date_after_today":
			if !ok || v.IsEmpty() {
				continue
			}
			parsed, err := time.Parse("2006-01-02", strings.TrimSpace(v.Str))
			if err != nil {
				continue // per-field validation already reports unparseable dates
			}
			parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())
			if parsed.Before(today) {
				violations = append(violations,
					fmt.Sprintf("%s expired on %s", rule.FieldName, parsed.Format("2006-01-02")))
			}
		case "min_threshold":
			threshold, have := reqs.MinThresholds[rule.FieldName]
			if !have || !ok || v.IsEmpty() {
				continue
			}
			if n, numeric := v.AsNumber(); numeric && n < threshold {
				violations = append(violations,
					fmt.Sprintf("%s %v is below the required minimum %v", rule.FieldName, n, threshold))
			}
		case "boolean_required":
			if !reqs.Flags["require_"+rule.FieldName] {
				continue
			}
			if !ok || !v.IsTrue() {
				violations = append(violations,
					fmt.Sprintf("%s must be present and true", rule.FieldName))
			}
		}
	}
	return violations
}
