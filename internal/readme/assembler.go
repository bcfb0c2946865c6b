package readme

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/jonathan/profile-forge/internal/devicon"
	"github.com/jonathan/profile-forge/internal/llm"
	"github.com/jonathan/profile-forge/internal/prompts"
	"github.com/jonathan/profile-forge/internal/taxonomy"
	"github.com/jonathan/profile-forge/internal/types"
)

// fallbackSubtitle is used when no LLM client is configured or the
// subtitle call fails. Assembly never fails because of the subtitle.
const fallbackSubtitle = "👨‍💻 Software Developer | 🚀 Tech Enthusiast"

// sectionEmoji decorates tech stack section headings.
var sectionEmoji = map[taxonomy.Category]string{
	taxonomy.CategoryLanguage: "💻",
	taxonomy.CategoryFrontend: "🌐",
	taxonomy.CategoryBackend:  "⚙️",
	taxonomy.CategoryDataML:   "📊",
	taxonomy.CategoryDatabase: "🗄️",
	taxonomy.CategoryDevOps:   "☁️",
	taxonomy.CategoryMobile:   "📱",
	taxonomy.CategoryTool:     "🛠️",
	taxonomy.CategoryOther:    "🎯",
}

// Assembler builds complete README.md documents. The resolver is
// required; the LLM client is optional and only powers the personalized
// subtitle.
type Assembler struct {
	resolver *devicon.Resolver
	client   llm.Client
}

// NewAssembler creates an Assembler. Pass a nil client to disable
// AI-generated subtitles and use the static fallback.
func NewAssembler(resolver *devicon.Resolver, client llm.Client) (*Assembler, error) {
	if resolver == nil {
		return nil, &AssembleError{Message: "resolver is required"}
	}
	return &Assembler{resolver: resolver, client: client}, nil
}

// Assemble generates a complete README.md document from profile data.
// Every skill the profile mentions appears in the output: skills without
// a dedicated icon render as shields.io text badges instead of being
// dropped.
func (a *Assembler) Assemble(ctx context.Context, profile *types.ProfileData) (string, error) {
	if profile == nil {
		return "", &AssembleError{Message: "profile data is required"}
	}
	if strings.TrimSpace(profile.Name) == "" {
		return "", &AssembleError{Message: "profile name is required"}
	}

	sections := []string{a.header(ctx, profile)}

	if about := a.aboutSection(profile); about != "" {
		sections = append(sections, about)
	}

	sections = append(sections, a.techStackSections(profile)...)

	if profile.GitHub != "" {
		sections = append(sections, statsSection(profile.GitHub))
		sections = append(sections, snakeSection(profile.GitHub))
	}

	return strings.Join(sections, "\n\n") + "\n", nil
}

// header builds the centered title, subtitle, and contact badge block.
func (a *Assembler) header(ctx context.Context, profile *types.ProfileData) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<h1 align=\"center\">Hi there, I'm %s 👋</h1>\n\n", EscapeMarkdown(profile.Name))
	fmt.Fprintf(&sb, "<h3 align=\"center\">%s</h3>\n", a.subtitle(ctx, profile))

	if badges := contactBadges(profile); badges != "" {
		sb.WriteString("\n<div align=\"center\">\n\n")
		sb.WriteString(badges)
		sb.WriteString("\n\n</div>\n")
	}

	sb.WriteString("\n---")
	return sb.String()
}

// subtitle asks the LLM for a one-line tagline, falling back to a
// static subtitle when no client is configured or the call fails.
func (a *Assembler) subtitle(ctx context.Context, profile *types.ProfileData) string {
	if a.client == nil {
		return fallbackSubtitle
	}

	prompt := buildSubtitlePrompt(profile)
	response, err := a.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("subtitle generation failed, using fallback: %v", err)
		return fallbackSubtitle
	}

	// One line only; the model sometimes adds commentary.
	line := strings.TrimSpace(response)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	line = strings.Trim(line, `"`)
	if line == "" {
		return fallbackSubtitle
	}
	return line
}

func buildSubtitlePrompt(profile *types.ProfileData) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", profile.Name)
	if len(profile.Languages) > 0 {
		fmt.Fprintf(&sb, "Languages: %s\n", strings.Join(profile.Languages, ", "))
	}
	if len(profile.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(profile.Skills, ", "))
	}
	if profile.Summary != "" {
		fmt.Fprintf(&sb, "Summary: %s\n", profile.Summary)
	}

	template := prompts.MustGet("readme.json", "subtitle")
	return prompts.Format(template, map[string]string{"Facts": sb.String()})
}

// contactBadges builds the profile badge block. GitHub badges come
// first; LinkedIn, email, and portfolio badges appear only when the
// profile carries them.
func contactBadges(profile *types.ProfileData) string {
	var badges []string

	if profile.GitHub != "" {
		user := url.QueryEscape(profile.GitHub)
		badges = append(badges,
			fmt.Sprintf("[![Profile Views](https://komarev.com/ghpvc/?username=%s&label=Profile%%20views&color=0e75b6&style=flat)](https://github.com/%s)", user, user),
			fmt.Sprintf("[![GitHub Followers](https://img.shields.io/github/followers/%s?style=social)](https://github.com/%s)", user, user),
		)
	}
	if profile.LinkedIn != "" {
		badges = append(badges,
			fmt.Sprintf("[![LinkedIn](https://img.shields.io/badge/LinkedIn-Connect-0A66C2?style=flat&logo=linkedin&logoColor=white)](%s)", profile.LinkedIn))
	}
	if profile.Email != "" {
		badges = append(badges,
			fmt.Sprintf("[![Email](https://img.shields.io/badge/Email-Contact%%20Me-red?style=flat&logo=gmail)](mailto:%s)", profile.Email))
	}
	if profile.Portfolio != "" {
		badges = append(badges,
			fmt.Sprintf("[![Portfolio](https://img.shields.io/badge/Portfolio-Visit-2ea44f?style=flat&logo=googlechrome&logoColor=white)](%s)", profile.Portfolio))
	}

	return strings.Join(badges, "\n")
}

// aboutSection builds the About Me block from the summary and the
// optional personal fields. Returns "" when there is nothing to say.
func (a *Assembler) aboutSection(profile *types.ProfileData) string {
	bullets := aboutBullets(profile)
	if profile.Summary == "" && len(bullets) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## 👋 About Me\n\n<div align=\"left\">\n")

	if profile.Summary != "" {
		fmt.Fprintf(&sb, "\n  %s\n", profile.Summary)
	}
	if len(bullets) > 0 {
		sb.WriteString("\n")
		for _, bullet := range bullets {
			sb.WriteString(bullet)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n</div>\n\n---\n\n## 🛠️ Tech Stack")
	return sb.String()
}

func aboutBullets(profile *types.ProfileData) []string {
	var bullets []string
	if profile.CurrentlyWorkingOn != "" {
		bullets = append(bullets, fmt.Sprintf("  - 🔭 **Currently working on:** %s", profile.CurrentlyWorkingOn))
	}
	if profile.CurrentlyLearning != "" {
		bullets = append(bullets, fmt.Sprintf("  - 🌱 **Currently learning:** %s", profile.CurrentlyLearning))
	}
	if profile.OpenTo != "" {
		bullets = append(bullets, fmt.Sprintf("  - 💬 **Open to:** %s", profile.OpenTo))
	}
	if profile.FunFact != "" {
		bullets = append(bullets, fmt.Sprintf("  - ⚡ **Fun fact:** %s", profile.FunFact))
	}
	if profile.Email != "" {
		bullets = append(bullets, fmt.Sprintf("  - 📫 **Reach me at:** %s", profile.Email))
	}
	return bullets
}

// techStackSections resolves every skill string and renders one section
// per populated category, in stable category order. Declared languages
// always land in the languages bucket and declared tools in the tools
// bucket; free-form skills go wherever classification puts them.
func (a *Assembler) techStackSections(profile *types.ProfileData) []string {
	if !profile.HasSkills() {
		return nil
	}

	buckets := make(map[taxonomy.Category][]devicon.ResolvedSkill)
	seen := make(map[string]struct{})

	add := func(category taxonomy.Category, skill devicon.ResolvedSkill) {
		key := skill.CanonicalName
		if key == "" {
			key = strings.ToLower(strings.TrimSpace(skill.InputText))
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		buckets[category] = append(buckets[category], skill)
	}

	for _, skill := range a.resolver.ResolveBatch(profile.Languages) {
		add(taxonomy.CategoryLanguage, skill)
	}
	for _, skill := range a.resolver.ResolveBatch(profile.Skills) {
		add(skill.Category, skill)
	}
	for _, skill := range a.resolver.ResolveBatch(profile.Tools) {
		add(taxonomy.CategoryTool, skill)
	}

	var sections []string
	for _, category := range taxonomy.AllCategories() {
		skills := buckets[category]
		if len(skills) == 0 {
			continue
		}
		sections = append(sections, renderSkillSection(category, skills))
	}
	return sections
}

// renderSkillSection renders one category heading plus its icon row.
func renderSkillSection(category taxonomy.Category, skills []devicon.ResolvedSkill) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### %s %s\n\n<div align=\"left\">\n", sectionEmoji[category], category.Title())
	for _, skill := range skills {
		sb.WriteString(skillImage(skill))
		sb.WriteString("\n")
	}
	sb.WriteString("</div>")
	return sb.String()
}

// skillImage renders a single skill as an image tag. Devicon matches
// render at a fixed height; badge fallbacks carry their own size.
func skillImage(skill devicon.ResolvedSkill) string {
	label := skill.CanonicalName
	if label == "" {
		label = skill.InputText
	}
	if skill.Resolved() {
		return fmt.Sprintf("  <img src=\"%s\" height=\"40\" alt=\"%s logo\" title=\"%s\" />",
			skill.IconURL, escapeAttr(label), escapeAttr(label))
	}
	return fmt.Sprintf("  <img src=\"%s\" alt=\"%s badge\" title=\"%s\" />",
		skill.IconURL, escapeAttr(label), escapeAttr(label))
}

// statsSection renders the GitHub activity cards.
func statsSection(user string) string {
	escaped := url.QueryEscape(user)
	return fmt.Sprintf(`---

## 📊 GitHub Activity

<div align="center">

  <img src="https://github-readme-stats.vercel.app/api?username=%s&hide_title=false&hide_rank=false&show_icons=true&include_all_commits=true&count_private=true&theme=dark&locale=en&hide_border=true&bg_color=0D1117" height="150" alt="stats graph" />
  <img src="https://github-readme-stats.vercel.app/api/top-langs/?username=%s&locale=en&hide_title=false&layout=compact&card_width=320&langs_count=5&theme=dark&hide_border=true&bg_color=0D1117" height="150" alt="languages graph" />

</div>

<div align="center">
  <img src="https://github-readme-streak-stats.herokuapp.com/?user=%s&theme=dark&hide_border=true&background=0D1117" alt="streak stats" />
</div>`, escaped, escaped, escaped)
}

// snakeSection renders the contribution snake animation. The image is
// produced by a workflow committed to the profile repository's output
// branch, so the URL points into the user's own repo.
func snakeSection(user string) string {
	escaped := url.QueryEscape(user)
	return fmt.Sprintf(`---

## 🐍 Contribution Graph

<div align="center">
  <img src="https://github.com/%s/%s/blob/output/snake-dark.svg?raw=true" alt="Snake animation" />
</div>

<div align="center">
  <img src="https://github-readme-activity-graph.vercel.app/graph?username=%s&theme=dark&hide_border=true&bg_color=0D1117" alt="Activity graph" />
</div>`, escaped, escaped, escaped)
}
