package llm

import (
	"testing"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCleanJSONBlock_PreambleText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before JSON object",
			input:    "As requested, here is the JSON:\n{\"name\": \"Amira\"}",
			expected: `{"name": "Amira"}`,
		},
		{
			name:     "preamble and trailer",
			input:    "Here is the extracted profile:\n\n{\"name\": \"Amira\", \"github\": \"amira\"}\n\nLet me know if you need anything else.",
			expected: `{"name": "Amira", "github": "amira"}`,
		},
		{
			name:     "fenced with preamble inside",
			input:    "```json\nSure thing:\n{\"name\": \"Amira\"}\n```",
			expected: `{"name": "Amira"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCleanJSONBlock_NoBraces(t *testing.T) {
	// Text that never contained JSON passes through untouched.
	if got := CleanJSONBlock("no json here"); got != "no json here" {
		t.Errorf("CleanJSONBlock() = %q", got)
	}
}
