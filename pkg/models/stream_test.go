package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamEventDecode(t *testing.T) {
	ev := NewStreamEvent(KindTokenUsage, "stream-1", TokenUsageData{
		Model:        "gpt-4o",
		InputTokens:  120,
		OutputTokens: 30,
	})
	assert.Equal(t, KindTokenUsage, ev.Kind)
	assert.Equal(t, "stream-1", ev.StreamID)
	assert.NotEmpty(t, ev.Timestamp)

	var usage TokenUsageData
	require.NoError(t, ev.Decode(&usage))
	assert.Equal(t, "gpt-4o", usage.Model)
	assert.Equal(t, 120, usage.InputTokens)
	assert.Equal(t, 30, usage.OutputTokens)
}

func TestStreamEventDecodeEmptyPayload(t *testing.T) {
	ev := NewStreamEvent(KindStreamingStart, "stream-1", nil)

	var chunk ChunkData
	require.NoError(t, ev.Decode(&chunk))
	assert.Empty(t, chunk.Content)
}

func TestToolCallResponseFailed(t *testing.T) {
	tests := []struct {
		name string
		data ToolCallResponseData
		want bool
	}{
		{
			name: "clean success",
			data: ToolCallResponseData{Status: "success"},
			want: false,
		},
		{
			name: "failed status",
			data: ToolCallResponseData{Status: "failed"},
			want: true,
		},
		{
			name: "error status",
			data: ToolCallResponseData{Status: "error"},
			want: true,
		},
		{
			name: "error message set",
			data: ToolCallResponseData{Error: "timeout contacting tool"},
			want: true,
		},
		{
			name: "result reports success false",
			data: ToolCallResponseData{Result: json.RawMessage(`{"success": false}`)},
			want: true,
		},
		{
			name: "result reports success true",
			data: ToolCallResponseData{Result: json.RawMessage(`{"success": true}`)},
			want: false,
		},
		{
			name: "result without success key",
			data: ToolCallResponseData{Result: json.RawMessage(`{"rows": 3}`)},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.data.Failed())
		})
	}
}
