// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/profile-forge/internal/validation"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ProfileData")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Write all output in English, even if the input is in another language.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString(validation.QuoteUserContent(inputText, "self-description"))
	sb.WriteString("\n")

	return sb.String()
}

// ProfileDataSchema returns the extraction schema for a user's
// free-text or spoken self-description. The skill lists deliberately
// have no fixed vocabulary; icon resolution happens downstream.
func ProfileDataSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ProfileData",
		Description: `You are an expert at turning a developer's informal self-description into structured profile data.
Your task is to extract personal and professional information for a GitHub profile README.
Keep skill and tool names exactly as the person said them; do not canonicalize spellings.`,
		Fields: []SchemaField{
			{
				Name:        "name",
				Type:        "\"string\"",
				Description: "Full name as stated",
				Required:    true,
			},
			{
				Name:        "summary",
				Type:        "\"string\"",
				Description: "One-paragraph professional summary in third person",
				Required:    false,
			},
			{
				Name:        "email",
				Type:        "\"string\"",
				Description: "Email address if mentioned",
				Required:    false,
			},
			{
				Name:        "github",
				Type:        "\"string\"",
				Description: "GitHub username (not URL) if mentioned",
				Required:    false,
			},
			{
				Name:        "linkedin",
				Type:        "\"string\"",
				Description: "LinkedIn profile URL if mentioned",
				Required:    false,
			},
			{
				Name:        "portfolio",
				Type:        "\"string\"",
				Description: "Personal site or portfolio URL if mentioned",
				Required:    false,
			},
			{
				Name:        "languages",
				Type:        "[\"string\"]",
				Description: "Programming languages, as spoken",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Frameworks, libraries, and technical skills, as spoken",
				Required:    false,
			},
			{
				Name:        "tools",
				Type:        "[\"string\"]",
				Description: "Tools and platforms (editors, cloud, collaboration), as spoken",
				Required:    false,
			},
			{
				Name:        "currently_working_on",
				Type:        "\"string\"",
				Description: "Current project or focus if mentioned",
				Required:    false,
			},
			{
				Name:        "currently_learning",
				Type:        "\"string\"",
				Description: "What the person is learning if mentioned",
				Required:    false,
			},
			{
				Name:        "open_to",
				Type:        "\"string\"",
				Description: "Collaboration/work the person is open to, if mentioned",
				Required:    false,
			},
			{
				Name:        "fun_fact",
				Type:        "\"string\"",
				Description: "A fun personal fact if mentioned",
				Required:    false,
			},
		},
	}
}
