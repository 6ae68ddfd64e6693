package validator

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/entity"
)

func strValue(s string) entity.FieldValue {
	return entity.ValueFromJSON("string", json.RawMessage(`"`+s+`"`))
}

func numValue(s string) entity.FieldValue {
	return entity.ValueFromJSON("number", json.RawMessage(s))
}

func requiredRule(field string) entity.FieldRule {
	return entity.FieldRule{FieldName: field, Rule: "required"}
}

func countSeverity(errs []entity.ValidationError, severity string) int {
	n := 0
	for _, e := range errs {
		if e.Severity == severity {
			n++
		}
	}
	return n
}

func TestMissingRequiredField(t *testing.T) {
	v := New(nil)

	for _, raw := range []string{`""`, `"n/a"`, `"NULL"`, `"None"`, `"  "`, `null`} {
		res := v.ValidateField("policy_number", entity.ValueFromJSON("string", json.RawMessage(raw)), 0.9,
			[]entity.FieldRule{requiredRule("policy_number")}, entity.ProjectRequirements{})

		if res.FieldStatus != constants.FieldStatusMissing {
			t.Errorf("raw %s: status = %s, want MISSING", raw, res.FieldStatus)
		}
		if res.Confidence > MissingConfidenceCap {
			t.Errorf("raw %s: confidence %v not capped at %v", raw, res.Confidence, MissingConfidenceCap)
		}
		// Exactly one error, and it is the required rule.
		if len(res.Errors) != 1 || res.Errors[0].Rule != "required" {
			t.Errorf("raw %s: errors = %+v, want single required error", raw, res.Errors)
		}
	}
}

func TestMissingOptionalFieldHasNoError(t *testing.T) {
	v := New(nil)
	res := v.ValidateField("notes", entity.ValueFromJSON("string", nil), 0.2, nil, entity.ProjectRequirements{})
	if res.FieldStatus != constants.FieldStatusMissing {
		t.Errorf("status = %s, want MISSING", res.FieldStatus)
	}
	if len(res.Errors) != 0 {
		t.Errorf("optional missing field produced errors: %+v", res.Errors)
	}
}

func TestMissingKeepsLowConfidenceUncapped(t *testing.T) {
	v := New(nil)
	res := v.ValidateField("notes", entity.ValueFromJSON("string", nil), 0.1, nil, entity.ProjectRequirements{})
	if res.Confidence != 0.1 {
		t.Errorf("confidence below cap must pass through, got %v", res.Confidence)
	}
}

func TestLowConfidenceNeedsReview(t *testing.T) {
	v := New(nil)
	res := v.ValidateField("insurer", strValue("Acme Mutual"), 0.5, nil, entity.ProjectRequirements{})
	if res.FieldStatus != constants.FieldStatusNeedsReview {
		t.Errorf("status = %s, want NEEDS_REVIEW", res.FieldStatus)
	}
	if countSeverity(res.Errors, SeverityWarning) != 1 {
		t.Errorf("expected one low_confidence warning, got %+v", res.Errors)
	}
}

func TestHighConfidenceCleanValuePasses(t *testing.T) {
	v := New(nil)
	res := v.ValidateField("insurer", strValue("Acme Mutual"), 0.95, nil, entity.ProjectRequirements{})
	if res.FieldStatus != constants.FieldStatusPass {
		t.Errorf("status = %s, want PASS", res.FieldStatus)
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %+v", res.Errors)
	}
}

func TestDateAfterToday(t *testing.T) {
	v := New(nil)
	rule := []entity.FieldRule{{FieldName: "expiry_date", Rule: "date_after_today"}}

	past := v.ValidateField("expiry_date", strValue("2020-01-15"), 0.95, rule, entity.ProjectRequirements{})
	if past.FieldStatus != constants.FieldStatusFailValidation {
		t.Errorf("past date status = %s, want FAIL_VALIDATION", past.FieldStatus)
	}

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	ok := v.ValidateField("expiry_date", strValue(future), 0.95, rule, entity.ProjectRequirements{})
	if ok.FieldStatus != constants.FieldStatusPass {
		t.Errorf("future date status = %s, want PASS", ok.FieldStatus)
	}

	// Today's date is not before today-at-midnight.
	today := time.Now().Format("2006-01-02")
	sameDay := v.ValidateField("expiry_date", strValue(today), 0.95, rule, entity.ProjectRequirements{})
	if sameDay.FieldStatus != constants.FieldStatusPass {
		t.Errorf("same-day date status = %s, want PASS", sameDay.FieldStatus)
	}

	garbage := v.ValidateField("expiry_date", strValue("next tuesday"), 0.95, rule, entity.ProjectRequirements{})
	if garbage.FieldStatus != constants.FieldStatusFailValidation {
		t.Errorf("unparseable date status = %s, want FAIL_VALIDATION", garbage.FieldStatus)
	}
}

func TestMinValue(t *testing.T) {
	v := New(nil)
	rule := []entity.FieldRule{{FieldName: "liability_limit", Rule: "min_value", Threshold: 1000000}}

	low := v.ValidateField("liability_limit", numValue("500000"), 0.95, rule, entity.ProjectRequirements{})
	if low.FieldStatus != constants.FieldStatusFailValidation {
		t.Errorf("below-threshold status = %s, want FAIL_VALIDATION", low.FieldStatus)
	}

	ok := v.ValidateField("liability_limit", numValue("2000000"), 0.95, rule, entity.ProjectRequirements{})
	if ok.FieldStatus != constants.FieldStatusPass {
		t.Errorf("above-threshold status = %s, want PASS", ok.FieldStatus)
	}

	nonNumeric := v.ValidateField("liability_limit", strValue("a lot"), 0.95, rule, entity.ProjectRequirements{})
	if nonNumeric.FieldStatus != constants.FieldStatusFailValidation {
		t.Errorf("non-numeric status = %s, want FAIL_VALIDATION", nonNumeric.FieldStatus)
	}
}

func TestMinThresholdSkippedWithoutRequirement(t *testing.T) {
	v := New(nil)
	rule := []entity.FieldRule{{FieldName: "liability_limit", Rule: "min_threshold"}}

	// No requirement configured: rule is silently skipped.
	res := v.ValidateField("liability_limit", numValue("100"), 0.95, rule, entity.ProjectRequirements{})
	if res.FieldStatus != constants.FieldStatusPass {
		t.Errorf("status = %s, want PASS when requirement absent", res.FieldStatus)
	}

	reqs := entity.ProjectRequirements{MinThresholds: map[string]float64{"liability_limit": 1000}}
	res = v.ValidateField("liability_limit", numValue("100"), 0.95, rule, reqs)
	if res.FieldStatus != constants.FieldStatusFailValidation {
		t.Errorf("status = %s, want FAIL_VALIDATION when below requirement", res.FieldStatus)
	}
}

func TestBooleanRequired(t *testing.T) {
	v := New(nil)
	rule := []entity.FieldRule{{FieldName: "waiver_of_subrogation", Rule: "boolean_required"}}
	reqs := entity.ProjectRequirements{Flags: map[string]bool{"require_waiver_of_subrogation": true}}

	off := v.ValidateField("waiver_of_subrogation",
		entity.ValueFromJSON("boolean", json.RawMessage(`false`)), 0.95, rule, reqs)
	if off.FieldStatus != constants.FieldStatusFailValidation {
		t.Errorf("false value status = %s, want FAIL_VALIDATION", off.FieldStatus)
	}

	on := v.ValidateField("waiver_of_subrogation",
		entity.ValueFromJSON("boolean", json.RawMessage(`true`)), 0.95, rule, reqs)
	if on.FieldStatus != constants.FieldStatusPass {
		t.Errorf("true value status = %s, want PASS", on.FieldStatus)
	}

	// Flag not set: rule does nothing.
	relaxed := v.ValidateField("waiver_of_subrogation",
		entity.ValueFromJSON("boolean", json.RawMessage(`false`)), 0.95, rule, entity.ProjectRequirements{})
	if relaxed.FieldStatus != constants.FieldStatusPass {
		t.Errorf("unflagged status = %s, want PASS", relaxed.FieldStatus)
	}
}

func TestUnknownRuleIgnored(t *testing.T) {
	v := New(nil)
	rule := []entity.FieldRule{{FieldName: "insurer", Rule: "spell_check"}}
	res := v.ValidateField("insurer", strValue("Acme"), 0.95, rule, entity.ProjectRequirements{})
	if res.FieldStatus != constants.FieldStatusPass || len(res.Errors) != 0 {
		t.Errorf("unknown rule must be ignored, got %s / %+v", res.FieldStatus, res.Errors)
	}
}

func TestWarningsDontFail(t *testing.T) {
	v := New(nil)
	// Low confidence plus a passing min_value rule: warning only.
	rule := []entity.FieldRule{{FieldName: "liability_limit", Rule: "min_value", Threshold: 10}}
	res := v.ValidateField("liability_limit", numValue("100"), 0.5, rule, entity.ProjectRequirements{})
	if res.FieldStatus != constants.FieldStatusNeedsReview {
		t.Errorf("status = %s, want NEEDS_REVIEW", res.FieldStatus)
	}
	if countSeverity(res.Errors, SeverityError) != 0 {
		t.Errorf("unexpected hard errors: %+v", res.Errors)
	}
}
