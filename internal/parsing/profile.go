// Package parsing turns free-text self-descriptions into structured ProfileData using LLM extraction.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/profile-forge/internal/llm"
	"github.com/jonathan/profile-forge/internal/schemas"
	"github.com/jonathan/profile-forge/internal/types"
	"github.com/jonathan/profile-forge/internal/validation"
)

// ExtractProfile extracts structured profile data from a user's typed
// or transcribed self-description. The caller owns the client.
func ExtractProfile(ctx context.Context, client llm.Client, text string) (*types.ProfileData, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "text", Message: "input text is empty"}
	}

	// Heuristic injection check on the untrusted description; log only,
	// the quoted block in the prompt is the real defense.
	validation.LogInjectionWarning(validation.CheckBasicHeuristics(text), "self-description")

	prompt := llm.BuildExtractionPrompt(llm.ProfileDataSchema(), text)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	return parseProfileJSON(responseText)
}

// parseProfileJSON validates and decodes the model's JSON output.
func parseProfileJSON(jsonText string) (*types.ProfileData, error) {
	cleaned := llm.CleanJSONBlock(jsonText)

	if err := schemas.ValidateProfileData([]byte(cleaned)); err != nil {
		return nil, &ParseError{
			Message: "extraction output failed schema validation",
			Cause:   err,
		}
	}

	var profile types.ProfileData
	if err := json.Unmarshal([]byte(cleaned), &profile); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	postProcessProfile(&profile)
	return &profile, nil
}

// postProcessProfile trims surface noise the model tends to leave in:
// stray whitespace, a leading "@" on the GitHub handle, empty list
// items. Skill spellings are otherwise left alone for the resolver.
func postProcessProfile(profile *types.ProfileData) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Summary = strings.TrimSpace(profile.Summary)
	profile.Email = strings.TrimSpace(profile.Email)
	profile.GitHub = strings.TrimPrefix(strings.TrimSpace(profile.GitHub), "@")
	profile.LinkedIn = strings.TrimSpace(profile.LinkedIn)
	profile.Portfolio = strings.TrimSpace(profile.Portfolio)

	profile.Languages = cleanList(profile.Languages)
	profile.Skills = cleanList(profile.Skills)
	profile.Tools = cleanList(profile.Tools)
}

// cleanList trims entries and drops empties, preserving order.
func cleanList(items []string) []string {
	if len(items) == 0 {
		return items
	}
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}
