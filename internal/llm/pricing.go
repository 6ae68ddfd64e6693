package llm

import "strings"

// modelPrice is USD per 1K tokens.
type modelPrice struct {
	Input  float64
	Output float64
}

// Static price table. Unknown models fall back to the cheapest tier rather
// than failing a run over a pricing miss.
var priceTable = map[string]modelPrice{
	"gpt-4o":        {Input: 0.0025, Output: 0.01},
	"gpt-4o-mini":   {Input: 0.00015, Output: 0.0006},
	"gpt-4.1":       {Input: 0.002, Output: 0.008},
	"gpt-4.1-mini":  {Input: 0.0004, Output: 0.0016},
	"gpt-4.1-nano":  {Input: 0.0001, Output: 0.0004},
	"o4-mini":       {Input: 0.0011, Output: 0.0044},
	"gpt-3.5-turbo": {Input: 0.0005, Output: 0.0015},
}

var cheapestTier = modelPrice{Input: 0.0001, Output: 0.0004}

// CostUSD computes the dollar cost of one extraction call.
func CostUSD(model string, usage Usage) float64 {
	price, ok := priceTable[strings.ToLower(strings.TrimSpace(model))]
	if !ok {
		price = cheapestTier
	}
	return float64(usage.InputTokens)/1000*price.Input +
		float64(usage.OutputTokens)/1000*price.Output
}
