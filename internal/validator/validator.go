// Package validator evaluates per-field rules over extracted values.
package validator

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/entity"
)

const (
	// ReviewThreshold is the fixed confidence below which a field is
	// flagged for human review.
	ReviewThreshold = 0.85
	// MissingConfidenceCap bounds the stored confidence of an absent
	// field. A model's stated confidence on an absent value is not
	// trustworthy; the cap prevents false auto-acceptance.
	MissingConfidenceCap = 0.30
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Result is the validation outcome for one field.
type Result struct {
	FieldStatus constants.FieldStatus
	Confidence  float32
	Errors      []entity.ValidationError
}

// Validator applies template rules plus per-project requirements.
type Validator struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Validator {
	if log == nil {
		log = slog.Default()
	}
	return &Validator{log: log}
}

// ValidateField evaluates all rules for one field, in order.
func (v *Validator) ValidateField(
	name string,
	value entity.FieldValue,
	confidence float32,
	rules []entity.FieldRule,
	reqs entity.ProjectRequirements,
) Result {
	// Rule 1: absent value short-circuits everything else.
	if value.IsEmpty() {
		res := Result{
			FieldStatus: constants.FieldStatusMissing,
			Confidence:  confidence,
		}
		if res.Confidence > MissingConfidenceCap {
			res.Confidence = MissingConfidenceCap
		}
		if isRequired(rules) {
			res.Errors = append(res.Errors, entity.ValidationError{
				Rule:     "required",
				Message:  fmt.Sprintf("required field %q is missing", name),
				Severity: SeverityError,
			})
		}
		return res
	}

	var errs []entity.ValidationError

	// Rule 2: low-confidence flag. A warning, never a failure by itself.
	if confidence < ReviewThreshold {
		errs = append(errs, entity.ValidationError{
			Rule:     "low_confidence",
			Message:  fmt.Sprintf("confidence %.2f below review threshold %.2f", confidence, ReviewThreshold),
			Severity: SeverityWarning,
		})
	}

	// Rule 3: field-specific rules, value present.
	for _, rule := range rules {
		errs = append(errs, v.applyRule(name, value, rule, reqs)...)
	}

	return Result{
		FieldStatus: reduceStatus(errs, confidence),
		Confidence:  confidence,
		Errors:      errs,
	}
}

func (v *Validator) applyRule(name string, value entity.FieldValue, rule entity.FieldRule, reqs entity.ProjectRequirements) (out []entity.ValidationError) {
	// A broken rule must never abort validation of other rules or fields.
	defer func() {
		if r := recover(); r != nil {
			v.log.Warn("validator.rule_panicked", "field", name, "rule", rule.Rule, "panic", r)
			out = append(out, entity.ValidationError{
				Rule:     rule.Rule,
				Message:  fmt.Sprintf("rule evaluation failed: %v", r),
				Severity: SeverityWarning,
			})
		}
	}()

	switch rule.Rule {
	case "required":
		// Handled by the empty check above.
		return nil

	case "date_after_today":
		parsed, err := parseDate(value.Str)
		if err != nil {
			return []entity.ValidationError{{
				Rule:     rule.Rule,
				Message:  fmt.Sprintf("cannot parse %q as a date", value.Str),
				Severity: SeverityError,
			}}
		}
		today := startOfToday()
		if parsed.Before(today) {
			return []entity.ValidationError{{
				Rule:     rule.Rule,
				Message:  fmt.Sprintf("date %s is in the past", parsed.Format("2006-01-02")),
				Severity: SeverityError,
			}}
		}
		return nil

	case "min_value":
		n, ok := value.AsNumber()
		if !ok {
			return []entity.ValidationError{{
				Rule:     rule.Rule,
				Message:  fmt.Sprintf("value %q is not numeric", value.Str),
				Severity: SeverityError,
			}}
		}
		if n < rule.Threshold {
			return []entity.ValidationError{{
				Rule:     rule.Rule,
				Message:  fmt.Sprintf("value %v below minimum %v", n, rule.Threshold),
				Severity: SeverityError,
			}}
		}
		return nil

	case "min_threshold":
		threshold, ok := reqs.MinThresholds[name]
		if !ok {
			// No project requirement configured: rule is skipped, not an error.
			return nil
		}
		n, ok := value.AsNumber()
		if !ok {
			return []entity.ValidationError{{
				Rule:     rule.Rule,
				Message:  fmt.Sprintf("value %q is not numeric", value.Str),
				Severity: SeverityError,
			}}
		}
		if n < threshold {
			return []entity.ValidationError{{
				Rule:     rule.Rule,
				Message:  fmt.Sprintf("value %v below required threshold %v", n, threshold),
				Severity: SeverityError,
			}}
		}
		return nil

	case "boolean_required":
		if reqs.Flags["require_"+name] && !value.IsTrue() {
			return []entity.ValidationError{{
				Rule:     rule.Rule,
				Message:  fmt.Sprintf("field %q must be true", name),
				Severity: SeverityError,
			}}
		}
		return nil

	default:
		// Forward-compatible: unknown rule names are logged and ignored.
		v.log.Warn("validator.unknown_rule", "field", name, "rule", rule.Rule)
		return nil
	}
}

func isRequired(rules []entity.FieldRule) bool {
	for _, r := range rules {
		if r.Rule == "required" {
			return true
		}
	}
	return false
}

func reduceStatus(errs []entity.ValidationError, confidence float32) constants.FieldStatus {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return constants.FieldStatusFailValidation
		}
	}
	if len(errs) > 0 || confidence < ReviewThreshold {
		return constants.FieldStatusNeedsReview
	}
	return constants.FieldStatusPass
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// Compare by calendar date in local time.
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
