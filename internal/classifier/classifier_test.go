package classifier

import (
	"math"
	"strings"
	"testing"

	"github.com/veridoc-ai/veridoc/internal/entity"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClassifyNoKeywordsAcceptsEverything(t *testing.T) {
	res := Classify("anything at all", "generic-form", nil)
	if res.Score != 1.0 {
		t.Errorf("expected score 1.0, got %v", res.Score)
	}
	if res.DetectedType != "GENERIC" {
		t.Errorf("expected GENERIC, got %s", res.DetectedType)
	}

	res = Classify("anything", "generic-form", &entity.DetectionKeywords{DocType: "COI"})
	if res.Score != 1.0 || res.DetectedType != "GENERIC" {
		t.Errorf("empty keyword profile should behave like nil, got %v / %s", res.Score, res.DetectedType)
	}
}

func TestClassifyTierWeights(t *testing.T) {
	kw := &entity.DetectionKeywords{
		DocType: "COI",
		High:    []string{"certificate of insurance", "policy number"},
		Medium:  []string{"liability"},
		Low:     []string{"insured"},
	}
	text := "This CERTIFICATE OF INSURANCE lists the policy number, liability limits, and the named insured."

	res := Classify(text, "coi", kw)
	// 2*0.15 + 1*0.05 + 1*0.02
	if !almostEqual(res.Score, 0.37) {
		t.Errorf("expected score 0.37, got %v", res.Score)
	}
	if res.DetectedType != "COI" {
		t.Errorf("expected confident COI, got %s", res.DetectedType)
	}
	if len(res.Keywords) != 4 {
		t.Errorf("expected 4 matched keywords, got %d: %v", len(res.Keywords), res.Keywords)
	}
}

func TestClassifyScoreCappedAtOne(t *testing.T) {
	kw := &entity.DetectionKeywords{DocType: "COI"}
	var words []string
	for i := 0; i < 10; i++ {
		words = append(words, string(rune('a'+i)))
	}
	kw.High = words // 10 * 0.15 = 1.5 uncapped

	res := Classify(strings.Join(words, " "), "coi", kw)
	if res.Score != 1.0 {
		t.Errorf("expected capped score 1.0, got %v", res.Score)
	}
}

func TestClassifyAmbiguousAndRejectedPrefixes(t *testing.T) {
	kw := &entity.DetectionKeywords{
		DocType: "COI",
		High:    []string{"certificate"},
		Low:     []string{"date"},
	}

	// One high match: 0.15 — ambiguous band.
	res := Classify("a certificate of something", "coi", kw)
	if res.DetectedType != "MAYBE_COI" {
		t.Errorf("expected MAYBE_COI for score %v, got %s", res.Score, res.DetectedType)
	}

	// One low match: 0.02 — rejected.
	res = Classify("just a date on a page", "coi", kw)
	if res.DetectedType != "NOT_COI" {
		t.Errorf("expected NOT_COI for score %v, got %s", res.Score, res.DetectedType)
	}

	// No matches at all.
	res = Classify("completely unrelated text", "coi", kw)
	if res.Score != 0 || res.DetectedType != "NOT_COI" {
		t.Errorf("expected 0/NOT_COI, got %v/%s", res.Score, res.DetectedType)
	}
}

func TestClassifyMatchingIsCaseInsensitive(t *testing.T) {
	kw := &entity.DetectionKeywords{DocType: "COI", High: []string{"Policy Number"}}
	res := Classify("POLICY NUMBER: 12345", "coi", kw)
	if !almostEqual(res.Score, 0.15) {
		t.Errorf("expected 0.15, got %v", res.Score)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	kw := &entity.DetectionKeywords{
		DocType: "COI",
		High:    []string{"certificate", "policy"},
		Medium:  []string{"coverage"},
	}
	text := "certificate with policy coverage"
	first := Classify(text, "coi", kw)
	for i := 0; i < 5; i++ {
		again := Classify(text, "coi", kw)
		if again.Score != first.Score || again.DetectedType != first.DetectedType {
			t.Fatalf("classification not deterministic: %v vs %v", first, again)
		}
	}
}
