package feedback

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_String(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected string
	}{
		{"Abusive", Result{Classification: Abusive}, "Abusive"},
		{"CleanWithSentiment", Result{Classification: Clean, Sentiment: Positive}, "Clean (Positive)"},
		{"Sentinel", Result{Classification: Empty}, "Please give meaningful feedback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.String())
		})
	}
}

func TestResult_JSON(t *testing.T) {
	t.Run("sentiment omitted when unset", func(t *testing.T) {
		data, err := json.Marshal(Result{Classification: Abusive})
		require.NoError(t, err)
		assert.JSONEq(t, `{"classification":"Abusive"}`, string(data))
	})

	t.Run("sentiment present for clean", func(t *testing.T) {
		data, err := json.Marshal(Result{Classification: Clean, Sentiment: Negative})
		require.NoError(t, err)
		assert.JSONEq(t, `{"classification":"Clean","sentiment":"Negative"}`, string(data))
	})
}

func TestCheck_String(t *testing.T) {
	c := Check{Name: "prefix", Abusive: true, Details: `token "f*ck"`}
	assert.Equal(t, `prefix: abusive, token "f*ck"`, c.String())

	c = Check{Name: "emoji", Abusive: false, Details: "0 emojis, none abusive"}
	assert.Equal(t, "emoji: clean, 0 emojis, none abusive", c.String())
}

func TestChecksToString(t *testing.T) {
	checks := []Check{
		{Name: "prefix", Abusive: false, Details: "no match"},
		{Name: "emoji", Abusive: true, Details: `emoji "🖕"`},
	}
	assert.Equal(t, `[{prefix: clean, no match}, {emoji: abusive, emoji "🖕"}]`, ChecksToString(checks))
}
