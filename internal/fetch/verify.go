package fetch

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// VerifyResult reports what a post-deployment check found.
type VerifyResult struct {
	ProfileURL     string
	ProfileVisible bool
	RawReadme      string
}

// profileHost and rawHost are variables so tests can point verification
// at a local server.
var (
	profileHost = "https://github.com"
	rawHost     = "https://raw.githubusercontent.com"
)

// VerifyDeployment checks that a freshly deployed profile README is
// actually live: the profile page renders it and the raw file is
// served from the default branch. Both fetches run concurrently.
func VerifyDeployment(ctx context.Context, username string, opts *Options) (*VerifyResult, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required")
	}

	result := &VerifyResult{
		ProfileURL: fmt.Sprintf("%s/%s", profileHost, username),
	}
	rawURL := fmt.Sprintf("%s/%s/%s/main/README.md", rawHost, username, username)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		page, err := URL(groupCtx, result.ProfileURL, opts)
		if err != nil {
			return fmt.Errorf("profile page check failed: %w", err)
		}
		text, err := ExtractMainText(page.HTML, ProfileReadmeSelectors())
		if err != nil {
			return err
		}
		result.ProfileVisible = strings.TrimSpace(text) != ""
		return nil
	})

	group.Go(func() error {
		raw, err := URL(groupCtx, rawURL, opts)
		if err != nil {
			return fmt.Errorf("raw README check failed: %w", err)
		}
		result.RawReadme = raw.HTML
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
