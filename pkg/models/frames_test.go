package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionID(t *testing.T) {
	assert.Equal(t, "sess-1:topic-9", ConnectionID("sess-1", "topic-9"))
}

func TestAttributionAttributed(t *testing.T) {
	tests := []struct {
		name string
		attr Attribution
		want bool
	}{
		{
			name: "marketplace agent with developer",
			attr: Attribution{AgentID: "a1", MarketplaceID: "m1", DeveloperUserID: "dev1"},
			want: true,
		},
		{
			name: "own agent",
			attr: Attribution{AgentID: "a1"},
			want: false,
		},
		{
			name: "marketplace id without developer",
			attr: Attribution{AgentID: "a1", MarketplaceID: "m1"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attr.Attributed())
		})
	}
}
