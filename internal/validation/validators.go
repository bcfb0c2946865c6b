// Package validation provides input validation for user-supplied profile fields.
package validation

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// MinDescriptionLength is the shortest self-description worth
	// sending to the extraction model.
	MinDescriptionLength = 10
	// MaxDescriptionLength caps input so one message cannot blow the
	// model's context window.
	MaxDescriptionLength = 5000
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// GitHub usernames: 1-39 characters, alphanumeric and hyphens,
	// cannot start or end with a hyphen.
	githubUsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,37}[a-zA-Z0-9])?$`)

	namePattern = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)

	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\?*]`)
	whitespaceRun        = regexp.MustCompile(`\s+`)
)

// audioExtensions lists the voice message formats we accept.
var audioExtensions = []string{".mp3", ".wav", ".ogg", ".oga", ".m4a", ".flac"}

// portfolioDomains lists common portfolio hosting platforms.
var portfolioDomains = []string{
	"github.io", "vercel.app", "netlify.app",
	"behance.net", "dribbble.com", "codepen.io",
}

// ValidEmail reports whether email looks like a deliverable address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidGitHubUsername reports whether username satisfies GitHub's
// account name rules.
func ValidGitHubUsername(username string) bool {
	return githubUsernamePattern.MatchString(strings.TrimSpace(username))
}

// ValidURL reports whether raw parses as an absolute URL with a host.
func ValidURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// ValidLinkedInURL reports whether raw is a LinkedIn profile or
// company page URL.
func ValidLinkedInURL(raw string) bool {
	if !ValidURL(raw) {
		return false
	}
	lowered := strings.ToLower(strings.TrimSpace(raw))
	return strings.Contains(lowered, "linkedin.com/in/") ||
		strings.Contains(lowered, "linkedin.com/company/")
}

// ValidPortfolioURL reports whether raw is a URL on a known portfolio
// hosting platform.
func ValidPortfolioURL(raw string) bool {
	if !ValidURL(raw) {
		return false
	}
	lowered := strings.ToLower(strings.TrimSpace(raw))
	for _, domain := range portfolioDomains {
		if strings.Contains(lowered, domain) {
			return true
		}
	}
	return false
}

// ValidDescriptionLength reports whether the trimmed text falls within
// the accepted self-description bounds.
func ValidDescriptionLength(text string) bool {
	length := len(strings.TrimSpace(text))
	return length >= MinDescriptionLength && length <= MaxDescriptionLength
}

// ValidAudioFilename reports whether filename carries a supported
// audio extension.
func ValidAudioFilename(filename string) bool {
	lowered := strings.ToLower(filename)
	for _, ext := range audioExtensions {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	return false
}

// ValidName reports whether name looks like a person's name: 2-50
// characters of letters, spaces, hyphens, apostrophes, and periods.
func ValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > 50 {
		return false
	}
	return namePattern.MatchString(trimmed)
}

// SanitizeFilename strips characters unsafe for filesystem use and
// collapses whitespace to underscores. Returns "file" when nothing
// usable remains.
func SanitizeFilename(filename string) string {
	sanitized := invalidFilenameChars.ReplaceAllString(strings.TrimSpace(filename), "")
	sanitized = whitespaceRun.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, ". ")
	if sanitized == "" {
		return "file"
	}
	return sanitized
}
