package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("amira@example.com"))
	assert.True(t, ValidEmail("  first.last+tag@sub.domain.io  "))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail(""))
}

func TestValidGitHubUsername(t *testing.T) {
	assert.True(t, ValidGitHubUsername("amirahp"))
	assert.True(t, ValidGitHubUsername("a"))
	assert.True(t, ValidGitHubUsername("octo-cat-42"))
	assert.False(t, ValidGitHubUsername("-leading"))
	assert.False(t, ValidGitHubUsername("trailing-"))
	assert.False(t, ValidGitHubUsername(strings.Repeat("a", 40)))
	assert.False(t, ValidGitHubUsername("has space"))
	assert.False(t, ValidGitHubUsername(""))
}

func TestValidURL(t *testing.T) {
	assert.True(t, ValidURL("https://example.com/page"))
	assert.True(t, ValidURL("http://localhost:8080"))
	assert.False(t, ValidURL("example.com"))
	assert.False(t, ValidURL("not a url"))
	assert.False(t, ValidURL(""))
}

func TestValidLinkedInURL(t *testing.T) {
	assert.True(t, ValidLinkedInURL("https://www.linkedin.com/in/amirahp"))
	assert.True(t, ValidLinkedInURL("https://LinkedIn.com/company/acme"))
	assert.False(t, ValidLinkedInURL("https://example.com/in/amirahp"))
	assert.False(t, ValidLinkedInURL("linkedin.com/in/amirahp"))
}

func TestValidPortfolioURL(t *testing.T) {
	assert.True(t, ValidPortfolioURL("https://amirahp.github.io"))
	assert.True(t, ValidPortfolioURL("https://my-site.vercel.app/projects"))
	assert.False(t, ValidPortfolioURL("https://example.com"))
}

func TestValidDescriptionLength(t *testing.T) {
	assert.True(t, ValidDescriptionLength("I build backend systems"))
	assert.False(t, ValidDescriptionLength("short"))
	assert.False(t, ValidDescriptionLength("         "))
	assert.False(t, ValidDescriptionLength(strings.Repeat("a", MaxDescriptionLength+1)))
	assert.True(t, ValidDescriptionLength(strings.Repeat("a", MaxDescriptionLength)))
}

func TestValidAudioFilename(t *testing.T) {
	assert.True(t, ValidAudioFilename("voice_note.ogg"))
	assert.True(t, ValidAudioFilename("RECORDING.MP3"))
	assert.False(t, ValidAudioFilename("document.pdf"))
	assert.False(t, ValidAudioFilename(""))
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Amira Hassan"))
	assert.True(t, ValidName("Jean-Luc O'Brien Jr."))
	assert.False(t, ValidName("A"))
	assert.False(t, ValidName("Name123"))
	assert.False(t, ValidName(strings.Repeat("a", 51)))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_readme.md", SanitizeFilename("my readme.md"))
	assert.Equal(t, "etcpasswd", SanitizeFilename(`/etc/passwd`))
	assert.Equal(t, "report", SanitizeFilename("report..."))
	assert.Equal(t, "file", SanitizeFilename("???"))
	assert.Equal(t, "file", SanitizeFilename(""))
}
