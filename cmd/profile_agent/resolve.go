package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-forge/internal/config"
	"github.com/jonathan/profile-forge/internal/devicon"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [skill]...",
	Short: "Resolve skill names to devicon icons",
	Long: `Resolves one or more skill names against the devicon catalog and prints the canonical name, category and icon URL for each. Unmatched skills fall back to a shields.io badge.

Example:
  profile_agent resolve golang "react native" postgres`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

var resolveConfigPath string

func init() {
	resolveCmd.Flags().StringVar(&resolveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, args []string) error {
	var cfg config.Config
	if resolveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(resolveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	resolver, err := devicon.NewResolver(devicon.LoadCatalog(), resolverOptionsFrom(cfg))
	if err != nil {
		return fmt.Errorf("failed to create resolver: %w", err)
	}

	matched := 0
	for _, skill := range resolver.ResolveBatch(args) {
		marker := "✗"
		if skill.Resolved() {
			marker = "✓"
			matched++
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s %-24s -> %s (%s)\n  %s\n",
			marker, skill.InputText, skill.CanonicalName, skill.Category, skill.IconURL)
	}
	_, _ = fmt.Fprintf(os.Stdout, "\n%d/%d skills matched a devicon\n", matched, len(args))

	return nil
}
