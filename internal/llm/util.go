// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock strips the wrapping an LLM tends to put around JSON
// output: markdown code fences and conversational preamble/trailer
// text outside the outermost object braces.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return sliceToBraces(strings.TrimSpace(text))
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a potential language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return sliceToBraces(strings.TrimSpace(text))
	}

	return sliceToBraces(text)
}

// sliceToBraces cuts text down to the span between the first '{' and
// the last '}', dropping any preamble or trailer the model added.
// Text without braces is returned unchanged.
func sliceToBraces(text string) string {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last == -1 || last < first {
		return text
	}
	return text[first : last+1]
}
