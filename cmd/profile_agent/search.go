package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-forge/internal/devicon"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the devicon catalog",
	Long:  `Searches canonical devicon names and aliases for a substring and prints matching canonical names.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	if searchLimit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	resolver, err := devicon.NewResolver(devicon.LoadCatalog(), devicon.ResolverOptions{})
	if err != nil {
		return fmt.Errorf("failed to create resolver: %w", err)
	}

	results := resolver.Search(args[0], searchLimit)
	if len(results) == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "No catalog entries match %q\n", args[0])
		return nil
	}
	for _, name := range results {
		_, _ = fmt.Fprintln(os.Stdout, name)
	}

	return nil
}
