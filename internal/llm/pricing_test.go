package llm

import (
	"math"
	"testing"
)

func TestCostUSDKnownModel(t *testing.T) {
	usage := Usage{InputTokens: 2000, OutputTokens: 1000, TotalTokens: 3000}
	// gpt-4o-mini: 2 * 0.00015 + 1 * 0.0006
	want := 0.0009
	got := CostUSD("gpt-4o-mini", usage)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("CostUSD = %v, want %v", got, want)
	}
}

func TestCostUSDUnknownModelFallsBackToCheapestTier(t *testing.T) {
	usage := Usage{InputTokens: 1000, OutputTokens: 1000}
	want := cheapestTier.Input + cheapestTier.Output
	got := CostUSD("some-future-model", usage)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("CostUSD = %v, want cheapest-tier %v", got, want)
	}
}

func TestCostUSDNormalizesModelName(t *testing.T) {
	usage := Usage{InputTokens: 1000}
	if CostUSD("  GPT-4O  ", usage) != CostUSD("gpt-4o", usage) {
		t.Error("model lookup should be case- and whitespace-insensitive")
	}
}

func TestCostUSDZeroUsage(t *testing.T) {
	if got := CostUSD("gpt-4o", Usage{}); got != 0 {
		t.Errorf("zero usage should cost 0, got %v", got)
	}
}
