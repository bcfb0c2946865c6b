// Package main provides the entry point for the Profile Forge CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profile_agent",
	Short: "GitHub profile README generator",
	Long:  "Profile Forge turns a spoken or typed self-description into a polished GitHub profile README with devicon tech-stack icons, stats widgets and a contribution snake, and can deploy it straight to the user's profile repository.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
