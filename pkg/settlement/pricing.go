package settlement

import (
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/models"
)

// TierStandard is the pricing tier assumed for models missing from the
// table.
const TierStandard = "standard"

// PricingOracle maps a model name to its pricing tier and USD cost per token
// pair. The platform default carries a small static table; deployments may
// plug a live one.
type PricingOracle interface {
	// CostUSD returns the dollar cost of the given usage for the model.
	// Unknown models cost zero dollars; credits are still charged.
	CostUSD(model string, inputTokens, outputTokens int) float64

	// Tier returns the tier label recorded on consume records for the
	// model. Unknown models fall back to TierStandard.
	Tier(model string) string
}

type modelRate struct {
	tier string
	// USD per million tokens, input and output.
	input  float64
	output float64
}

type staticPricing struct {
	rates map[string]modelRate
}

// NewStaticPricing returns the default table-driven oracle.
func NewStaticPricing() PricingOracle {
	return &staticPricing{
		rates: map[string]modelRate{
			"gpt-4o":      {tier: "premium", input: 2.50, output: 10.00},
			"gpt-4o-mini": {tier: TierStandard, input: 0.15, output: 0.60},
			"o3-mini":     {tier: "reasoning", input: 1.10, output: 4.40},
		},
	}
}

func (p *staticPricing) CostUSD(model string, inputTokens, outputTokens int) float64 {
	rate, ok := p.rates[model]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1e6*rate.input + float64(outputTokens)/1e6*rate.output
}

func (p *staticPricing) Tier(model string) string {
	if rate, ok := p.rates[model]; ok {
		return rate.tier
	}
	return TierStandard
}

// NormalizeUsage fills in TotalTokens when the graph leaves it unset.
func NormalizeUsage(u models.TokenUsageData) models.TokenUsageData {
	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}

// CreditsForUsage converts normalized token usage to credits: tiered rate
// per 1K tokens with the cache-read discount applied to the cached share.
// Any non-zero usage costs at least one credit.
func CreditsForUsage(u models.TokenUsageData, cfg config.WalletConfig) int64 {
	u = NormalizeUsage(u)
	if u.TotalTokens <= 0 {
		return 0
	}
	effective := float64(u.TotalTokens)
	if u.CacheReadTokens > 0 && u.CacheReadTokens <= u.TotalTokens {
		cached := float64(u.CacheReadTokens)
		effective = effective - cached + cached*cfg.CacheReadDiscount
	}
	credits := int64(effective / 1000.0 * float64(cfg.CreditsPer1KToken))
	if credits < 1 {
		credits = 1
	}
	return credits
}

// CreditsForToolCall prices one tool invocation. Failed calls are free.
func CreditsForToolCall(failed bool, cfg config.WalletConfig) int64 {
	if failed {
		return 0
	}
	return cfg.ToolCallRate
}
