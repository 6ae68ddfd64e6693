package compliance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/entity"
)

func TestReducePrecedence(t *testing.T) {
	cases := []struct {
		name   string
		fields []FieldVerdict
		want   constants.RecordStatus
	}{
		{
			name: "all pass",
			fields: []FieldVerdict{
				{FieldName: "a", FieldStatus: constants.FieldStatusPass},
				{FieldName: "b", FieldStatus: constants.FieldStatusPass},
			},
			want: constants.RecordStatusCompliant,
		},
		{
			name: "needs review wins over pass",
			fields: []FieldVerdict{
				{FieldName: "a", FieldStatus: constants.FieldStatusPass},
				{FieldName: "b", FieldStatus: constants.FieldStatusNeedsReview},
			},
			want: constants.RecordStatusNeedsReview,
		},
		{
			name: "fail validation wins over needs review",
			fields: []FieldVerdict{
				{FieldName: "a", FieldStatus: constants.FieldStatusNeedsReview},
				{FieldName: "b", FieldStatus: constants.FieldStatusFailValidation},
			},
			want: constants.RecordStatusNonCompliant,
		},
		{
			name: "required missing is non compliant",
			fields: []FieldVerdict{
				{FieldName: "a", FieldStatus: constants.FieldStatusMissing, IsRequired: true},
				{FieldName: "b", FieldStatus: constants.FieldStatusPass},
			},
			want: constants.RecordStatusNonCompliant,
		},
		{
			name: "optional missing is tolerated",
			fields: []FieldVerdict{
				{FieldName: "a", FieldStatus: constants.FieldStatusMissing},
				{FieldName: "b", FieldStatus: constants.FieldStatusPass},
			},
			want: constants.RecordStatusCompliant,
		},
		{
			name: "skipped wins over everything",
			fields: []FieldVerdict{
				{FieldName: "a", FieldStatus: constants.FieldStatusFailValidation},
				{FieldName: "b", FieldStatus: constants.FieldStatusSkippedDocType},
			},
			want: constants.RecordStatusSkipped,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeRecordStatus(tc.fields, nil)
			if got.RecordStatus != tc.want {
				t.Errorf("status = %s, want %s", got.RecordStatus, tc.want)
			}
		})
	}
}

func TestRuleViolationsForceNonCompliant(t *testing.T) {
	fields := []FieldVerdict{{FieldName: "a", FieldStatus: constants.FieldStatusPass}}
	got := ComputeRecordStatus(fields, []string{"liability_limit 500 is below the required minimum 1000"})
	if got.RecordStatus != constants.RecordStatusNonCompliant {
		t.Errorf("status = %s, want NON_COMPLIANT despite passing fields", got.RecordStatus)
	}
	if len(got.FailedRules) != 1 {
		t.Errorf("failed rules = %v", got.FailedRules)
	}

	// But never demote a wholesale skip.
	skipped := []FieldVerdict{{FieldName: "a", FieldStatus: constants.FieldStatusSkippedDocType}}
	got = ComputeRecordStatus(skipped, []string{"violation"})
	if got.RecordStatus != constants.RecordStatusSkipped {
		t.Errorf("status = %s, want SKIPPED to survive violations", got.RecordStatus)
	}
}

func TestFailedRulesAreOrderedAndUnioned(t *testing.T) {
	fields := []FieldVerdict{
		{FieldName: "a", FieldStatus: constants.FieldStatusMissing, IsRequired: true},
		{FieldName: "b", FieldStatus: constants.FieldStatusFailValidation},
	}
	got := ComputeRecordStatus(fields, []string{"domain violation"})
	if len(got.FailedRules) != 3 {
		t.Fatalf("failed rules = %v, want 3 entries", got.FailedRules)
	}
	if got.FailedRules[2] != "domain violation" {
		t.Errorf("domain violations must come after field failures: %v", got.FailedRules)
	}
}

func numVal(raw string) entity.FieldValue {
	return entity.ValueFromJSON("number", json.RawMessage(raw))
}

func TestCheckTemplateRules(t *testing.T) {
	tpl := &entity.Template{
		Slug: "coi",
		Validators: []entity.FieldRule{
			{FieldName: "expiry_date", Rule: "date_after_today"},
			{FieldName: "liability_limit", Rule: "min_threshold"},
			{FieldName: "waiver", Rule: "boolean_required"},
		},
	}
	reqs := entity.ProjectRequirements{
		MinThresholds: map[string]float64{"liability_limit": 1000000},
		Flags:         map[string]bool{"require_waiver": true},
	}

	values := map[string]entity.FieldValue{
		"expiry_date":     entity.ValueFromJSON("date", json.RawMessage(`"2019-06-30"`)),
		"liability_limit": numVal("500000"),
		"waiver":          entity.ValueFromJSON("boolean", json.RawMessage(`false`)),
	}

	violations := CheckTemplateRules(tpl, values, reqs)
	if len(violations) != 3 {
		t.Fatalf("violations = %v, want 3", violations)
	}

	clean := map[string]entity.FieldValue{
		"expiry_date":     entity.ValueFromJSON("date", json.RawMessage(`"`+time.Now().AddDate(1, 0, 0).Format("2006-01-02")+`"`)),
		"liability_limit": numVal("2000000"),
		"waiver":          entity.ValueFromJSON("boolean", json.RawMessage(`true`)),
	}
	if v := CheckTemplateRules(tpl, clean, reqs); len(v) != 0 {
		t.Errorf("clean values produced violations: %v", v)
	}
}

func TestCheckTemplateRulesWithoutRequirements(t *testing.T) {
	tpl := &entity.Template{
		Validators: []entity.FieldRule{
			{FieldName: "liability_limit", Rule: "min_threshold"},
			{FieldName: "waiver", Rule: "boolean_required"},
		},
	}
	values := map[string]entity.FieldValue{
		"liability_limit": numVal("1"),
		"waiver":          entity.ValueFromJSON("boolean", json.RawMessage(`false`)),
	}
	if v := CheckTemplateRules(tpl, values, entity.ProjectRequirements{}); len(v) != 0 {
		t.Errorf("rules without project requirements must not fire: %v", v)
	}
}
