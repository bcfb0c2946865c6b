package github

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"time"
)

//go:embed workflows/snake.yml
var snakeWorkflow []byte

// SnakeWorkflow returns the contribution snake workflow definition, for
// callers that package it instead of uploading it.
func SnakeWorkflow() []byte {
	out := make([]byte, len(snakeWorkflow))
	copy(out, snakeWorkflow)
	return out
}

const (
	readmePath        = "README.md"
	snakeWorkflowPath = ".github/workflows/snake.yml"
	snakeWorkflowFile = "snake.yml"

	readmeCommitMessage   = "Update README.md"
	workflowCommitMessage = "Add snake animation workflow"

	profileRepoDescription = "My GitHub profile"
)

// DeployResult describes a completed profile deployment.
type DeployResult struct {
	Username    string
	RepoURL     string
	RepoCreated bool
}

// DeployProfile publishes the README into the user's profile
// repository (the repo named after the account), creating it when
// missing, and installs the contribution snake workflow.
//
// expectedUsername, when non-empty, must match the account the token
// belongs to. This catches users pasting a token for a different
// account than the one their profile names.
func DeployProfile(ctx context.Context, client *Client, expectedUsername, readme string) (*DeployResult, error) {
	if strings.TrimSpace(readme) == "" {
		return nil, fmt.Errorf("readme content is empty")
	}

	username, err := client.ValidateToken(ctx)
	if err != nil {
		return nil, err
	}
	if expectedUsername != "" && !strings.EqualFold(expectedUsername, username) {
		return nil, fmt.Errorf("token belongs to %q but profile names %q", username, expectedUsername)
	}

	result := &DeployResult{Username: username}

	repo, err := client.GetRepo(ctx, username, username)
	if err != nil {
		return nil, err
	}
	if repo == nil {
		repo, err = client.CreateRepo(ctx, username, profileRepoDescription, false)
		if err != nil {
			return nil, err
		}
		result.RepoCreated = true
		// The contents API can briefly 404 on a fresh repository.
		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	result.RepoURL = repo.HTMLURL
	if result.RepoURL == "" {
		result.RepoURL = fmt.Sprintf("https://github.com/%s/%s", username, username)
	}

	// Uploads run sequentially: concurrent contents API writes to the
	// same branch race on the ref update and return 409.
	if err := client.PutFile(ctx, username, username, readmePath, []byte(readme), readmeCommitMessage); err != nil {
		return nil, err
	}
	if err := client.PutFile(ctx, username, username, snakeWorkflowPath, snakeWorkflow, workflowCommitMessage); err != nil {
		return nil, err
	}

	branch := repo.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	if err := client.TriggerWorkflow(ctx, username, username, snakeWorkflowFile, branch); err != nil {
		// The push trigger runs the workflow anyway; dispatch is an
		// acceleration, not a requirement.
		log.Printf("workflow dispatch failed for %s/%s: %v", username, username, err)
	}

	return result, nil
}
