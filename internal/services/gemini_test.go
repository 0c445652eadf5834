package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare JSON untouched",
			input:    `{"name": "Jane"}`,
			expected: `{"name": "Jane"}`,
		},
		{
			name:     "json-tagged fence",
			input:    "```json\n{\"name\": \"Jane\"}\n```",
			expected: `{"name": "Jane"}`,
		},
		{
			name:     "untagged fence",
			input:    "```\n{\"name\": \"Jane\"}\n```",
			expected: `{"name": "Jane"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "\n\n  {\"name\": \"Jane\"}  \n",
			expected: `{"name": "Jane"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripCodeFence(tt.input))
		})
	}
}

func TestDecodeModelJSON(t *testing.T) {
	t.Run("fenced object parses", func(t *testing.T) {
		var out map[string]string
		err := decodeModelJSON("```json\n{\"name\": \"Jane\"}\n```", &out)
		require.NoError(t, err)
		assert.Equal(t, "Jane", out["name"])
	})

	t.Run("non-JSON remainder fails with ErrResponseFormat", func(t *testing.T) {
		var out map[string]string
		err := decodeModelJSON("Sorry, I cannot help with that.", &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrResponseFormat)
	})

	t.Run("no partial recovery from prose around JSON", func(t *testing.T) {
		var out map[string]string
		err := decodeModelJSON("Here is the result: {\"name\": \"Jane\"}", &out)
		assert.ErrorIs(t, err, ErrResponseFormat)
	})
}
