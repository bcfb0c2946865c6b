package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-forge/internal/fetch"
	"github.com/jonathan/profile-forge/internal/github"
	"github.com/jonathan/profile-forge/internal/observability"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy a README to the GitHub profile repository",
	Long: `Pushes a README file to the special <username>/<username> repository, creating it if necessary, and installs the contribution snake workflow.

The token must have repo scope. Its authenticated user must match --user; this guards against pushing a profile to the wrong account.`,
	RunE: runDeploy,
}

var (
	deployReadmePath string
	deployUser       string
	deployToken      string
	deployVerify     bool
)

func init() {
	deployCmd.Flags().StringVar(&deployReadmePath, "readme", "README.md", "Path to the README file to deploy")
	deployCmd.Flags().StringVarP(&deployUser, "user", "u", "", "Expected GitHub username (required)")
	deployCmd.Flags().StringVar(&deployToken, "token", "", "GitHub token (optional, defaults to GITHUB_TOKEN env var)")
	deployCmd.Flags().BoolVar(&deployVerify, "verify", false, "After deploying, check that the profile page serves the new README")
	_ = deployCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	token := deployToken
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("GITHUB_TOKEN environment variable or --token flag is required")
	}

	data, err := os.ReadFile(deployReadmePath)
	if err != nil {
		return fmt.Errorf("failed to read README: %w", err)
	}

	client, err := github.NewClient(token, nil)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	result, err := github.DeployProfile(ctx, client, deployUser, string(data))
	if err != nil {
		return fmt.Errorf("deployment failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDeployResult(result)

	if deployVerify {
		verification, err := fetch.VerifyDeployment(ctx, result.Username, nil)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		if verification.ProfileVisible {
			_, _ = fmt.Fprintf(os.Stdout, "Profile README is live at %s\n", verification.ProfileURL)
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "Profile page at %s does not show the README yet; GitHub can take a minute to refresh\n", verification.ProfileURL)
		}
	}

	return nil
}
