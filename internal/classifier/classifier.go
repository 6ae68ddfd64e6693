// Package classifier scores document text against a template's
// expected-keyword profile to catch mismatched uploads. It is a keyword
// density heuristic, not a learned classifier.
package classifier

import (
	"fmt"
	"strings"

	"github.com/veridoc-ai/veridoc/internal/entity"
)

// Tier weights. Summed per matched keyword and capped at 1.0.
const (
	weightHigh   = 0.15
	weightMedium = 0.05
	weightLow    = 0.02
)

// Threshold semantics consumed by the orchestrator: >= ConfidentThreshold
// is a confident match, [AmbiguousThreshold, ConfidentThreshold) is
// ambiguous, below AmbiguousThreshold is rejected.
const (
	ConfidentThreshold = 0.3
	AmbiguousThreshold = 0.1
)

// Result is the classification outcome for one document.
type Result struct {
	Score        float64  `json:"score"`
	DetectedType string   `json:"detected_type"`
	Reason       string   `json:"reason"`
	Keywords     []string `json:"keywords,omitempty"`
}

// Classify scores documentText against the template's detection keywords.
// Templates without a keyword profile accept everything with score 1.0 so
// they still function without a classifier.
func Classify(documentText, templateSlug string, keywords *entity.DetectionKeywords) Result {
	if keywords == nil || (len(keywords.High)+len(keywords.Medium)+len(keywords.Low)) == 0 {
		return Result{
			Score:        1.0,
			DetectedType: "GENERIC",
			Reason:       fmt.Sprintf("no detection keywords configured for template %q", templateSlug),
		}
	}

	haystack := strings.ToLower(documentText)
	score := 0.0
	var matched []string

	match := func(kws []string, weight float64) {
		for _, kw := range kws {
			if kw == "" {
				continue
			}
			if strings.Contains(haystack, strings.ToLower(kw)) {
				score += weight
				matched = append(matched, kw)
			}
		}
	}
	match(keywords.High, weightHigh)
	match(keywords.Medium, weightMedium)
	match(keywords.Low, weightLow)

	if score > 1.0 {
		score = 1.0
	}

	docType := keywords.DocType
	if docType == "" {
		docType = "GENERIC"
	}
	detected := docType
	switch {
	case score >= ConfidentThreshold:
	case score >= AmbiguousThreshold:
		detected = "MAYBE_" + docType
	default:
		detected = "NOT_" + docType
	}

	return Result{
		Score:        score,
		DetectedType: detected,
		Reason: fmt.Sprintf("matched %d/%d keywords (score %.2f)",
			len(matched), len(keywords.High)+len(keywords.Medium)+len(keywords.Low), score),
		Keywords: matched,
	}
}
