package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/models"
)

func walletCfg() config.WalletConfig {
	return config.WalletConfig{
		CreditsPer1KToken: 1,
		CacheReadDiscount: 0.5,
		ToolCallRate:      2,
	}
}

func TestNormalizeUsage(t *testing.T) {
	t.Run("fills total from input and output", func(t *testing.T) {
		u := NormalizeUsage(models.TokenUsageData{InputTokens: 100, OutputTokens: 50})
		assert.Equal(t, 150, u.TotalTokens)
	})

	t.Run("keeps explicit total", func(t *testing.T) {
		u := NormalizeUsage(models.TokenUsageData{InputTokens: 100, OutputTokens: 50, TotalTokens: 170})
		assert.Equal(t, 170, u.TotalTokens)
	})
}

func TestCreditsForUsage(t *testing.T) {
	cfg := walletCfg()

	tests := []struct {
		name  string
		usage models.TokenUsageData
		want  int64
	}{
		{
			name:  "zero usage is free",
			usage: models.TokenUsageData{},
			want:  0,
		},
		{
			name:  "small usage charges minimum one credit",
			usage: models.TokenUsageData{InputTokens: 10, OutputTokens: 10},
			want:  1,
		},
		{
			name:  "rate per thousand tokens",
			usage: models.TokenUsageData{InputTokens: 3000, OutputTokens: 2000},
			want:  5,
		},
		{
			name:  "cache reads are discounted",
			usage: models.TokenUsageData{TotalTokens: 10000, CacheReadTokens: 10000},
			want:  5,
		},
		{
			name:  "cache reads above total are ignored",
			usage: models.TokenUsageData{TotalTokens: 4000, CacheReadTokens: 9000},
			want:  4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreditsForUsage(tt.usage, cfg))
		})
	}
}

func TestCreditsForToolCall(t *testing.T) {
	cfg := walletCfg()
	assert.Equal(t, int64(2), CreditsForToolCall(false, cfg))
	assert.Equal(t, int64(0), CreditsForToolCall(true, cfg), "failed tool calls are free")
}

func TestStaticPricingCostUSD(t *testing.T) {
	oracle := NewStaticPricing()

	t.Run("known model", func(t *testing.T) {
		// gpt-4o-mini: $0.15/M in, $0.60/M out.
		cost := oracle.CostUSD("gpt-4o-mini", 1_000_000, 1_000_000)
		assert.InDelta(t, 0.75, cost, 1e-9)
	})

	t.Run("unknown model costs zero dollars", func(t *testing.T) {
		assert.Zero(t, oracle.CostUSD("llama-kitchen-sink", 5000, 5000))
	})
}

func TestStaticPricingTier(t *testing.T) {
	oracle := NewStaticPricing()
	assert.Equal(t, "premium", oracle.Tier("gpt-4o"))
	assert.Equal(t, "reasoning", oracle.Tier("o3-mini"))
	assert.Equal(t, TierStandard, oracle.Tier("llama-kitchen-sink"))
}
