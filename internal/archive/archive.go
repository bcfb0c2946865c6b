// Package archive packages generated profiles into downloadable ZIP
// bundles for users who deploy by hand.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/profile-forge/internal/github"
)

const instructions = `# Manual Setup

1. Create a public repository named after your GitHub username
   (e.g. github.com/yourname/yourname).
2. Upload README.md to the repository root.
3. Upload snake.yml to .github/workflows/snake.yml to enable the
   contribution snake animation.
4. Your profile page will show the README immediately; the snake
   appears after the workflow's first run.
`

// BuildProfileBundle packages the README, the snake workflow, and
// setup instructions into a ZIP archive.
func BuildProfileBundle(readme string) ([]byte, error) {
	if strings.TrimSpace(readme) == "" {
		return nil, fmt.Errorf("readme content is empty")
	}

	files := []struct {
		name    string
		content []byte
	}{
		{"README.md", []byte(readme)},
		{".github/workflows/snake.yml", github.SnakeWorkflow()},
		{"INSTRUCTIONS.md", []byte(instructions)},
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	now := time.Now()

	for _, file := range files {
		header := &zip.FileHeader{
			Name:     file.name,
			Method:   zip.Deflate,
			Modified: now,
		}
		entry, err := writer.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", file.name, err)
		}
		if _, err := entry.Write(file.content); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", file.name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
