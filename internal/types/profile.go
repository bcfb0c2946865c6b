// Package types provides type definitions for structured data used throughout the profile-forge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ProfileData is the structured self-description extracted from the
// user's free text or voice transcript. The skill/tool/language lists
// carry whatever surface forms the extraction model emitted; icon
// resolution happens downstream.
type ProfileData struct {
	Name      string `json:"name"`
	Summary   string `json:"summary,omitempty"`
	Email     string `json:"email,omitempty"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`

	Languages []string `json:"languages,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Tools     []string `json:"tools,omitempty"`

	CurrentlyWorkingOn string `json:"currently_working_on,omitempty"`
	CurrentlyLearning  string `json:"currently_learning,omitempty"`
	OpenTo             string `json:"open_to,omitempty"`
	FunFact            string `json:"fun_fact,omitempty"`
}

// AllSkillStrings returns languages, skills, and tools as one flat
// list, preserving category order then input order. This is the raw
// batch handed to the skill resolver.
func (p *ProfileData) AllSkillStrings() []string {
	all := make([]string, 0, len(p.Languages)+len(p.Skills)+len(p.Tools))
	all = append(all, p.Languages...)
	all = append(all, p.Skills...)
	all = append(all, p.Tools...)
	return all
}

// HasSkills reports whether any skill list is non-empty.
func (p *ProfileData) HasSkills() bool {
	return len(p.Languages) > 0 || len(p.Skills) > 0 || len(p.Tools) > 0
}
