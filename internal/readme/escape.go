// Package readme assembles GitHub profile README documents from structured profile data.
package readme

import "strings"

// EscapeMarkdown escapes special Markdown characters in text
// Special characters: \ ` * _ { } [ ] ( ) # + ! |
func EscapeMarkdown(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '\\', '`', '*', '_', '{', '}', '[', ']', '(', ')', '#', '+', '!', '|':
			result.WriteRune('\\')
			result.WriteRune(r)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

var attrReplacer = strings.NewReplacer(`"`, "&quot;", "<", "&lt;", ">", "&gt;", "&", "&amp;")

// escapeAttr makes text safe for use inside an HTML attribute value.
func escapeAttr(text string) string {
	return attrReplacer.Replace(text)
}
