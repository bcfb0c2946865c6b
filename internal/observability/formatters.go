// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/profile-forge/internal/devicon"
	"github.com/jonathan/profile-forge/internal/github"
	"github.com/jonathan/profile-forge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.ProfileData) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:    %s\n", profile.Name))
	if profile.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:  %s\n", profile.GitHub))
	}
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:   %s\n", profile.Email))
	}
	if profile.Summary != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", profile.Summary))
	}

	writeList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", label))
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}
	writeList("Languages", profile.Languages)
	writeList("Skills", profile.Skills)
	writeList("Tools", profile.Tools)

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResolution outputs the per-skill icon resolution results.
func (p *Printer) PrintResolution(skills []devicon.ResolvedSkill) {
	if len(skills) == 0 {
		return
	}

	resolved := 0
	var sb strings.Builder
	for _, skill := range skills {
		marker := "✗"
		name := skill.InputText
		if skill.Resolved() {
			marker = "✓"
			name = skill.CanonicalName
			resolved++
		}
		sb.WriteString(fmt.Sprintf("%s %-20s %-12s %s\n", marker, name, skill.Category, skill.Tier))
	}
	sb.WriteString(fmt.Sprintf("\n%d/%d skills matched a devicon", resolved, len(skills)))

	p.printBox("ICON RESOLUTION", sb.String())
}

// PrintDeployResult outputs the outcome of a profile deployment.
func (p *Printer) PrintDeployResult(result *github.DeployResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Username:  %s\n", result.Username))
	sb.WriteString(fmt.Sprintf("Repo:      %s\n", result.RepoURL))
	if result.RepoCreated {
		sb.WriteString("Profile repository was created\n")
	} else {
		sb.WriteString("Profile repository already existed\n")
	}
	sb.WriteString(fmt.Sprintf("Profile:   https://github.com/%s", result.Username))

	p.printBox("DEPLOYMENT", sb.String())
}
