package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-forge/internal/archive"
	"github.com/jonathan/profile-forge/internal/config"
	"github.com/jonathan/profile-forge/internal/devicon"
	"github.com/jonathan/profile-forge/internal/github"
	"github.com/jonathan/profile-forge/internal/llm"
	"github.com/jonathan/profile-forge/internal/observability"
	"github.com/jonathan/profile-forge/internal/parsing"
	"github.com/jonathan/profile-forge/internal/preview"
	"github.com/jonathan/profile-forge/internal/readme"
	"github.com/jonathan/profile-forge/internal/validation"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a profile README from a self-description",
	Long: `Turns a free-text self-description into a GitHub profile README: extraction -> icon resolution -> assembly.

The description can be passed inline with --description or read from a file with --input. Configuration can be loaded from a JSON file using --config; command-line arguments override config file values.`,
	RunE: runGenerate,
}

var (
	genConfigPath  string
	genDescription string
	genInputPath   string
	genName        string
	genGitHub      string
	genLinkedIn    string
	genPortfolio   string
	genEmail       string
	genOut         string
	genBundle      string
	genPreview     string
	genToken       string
	genAPIKey      string
	genVerbose     bool
)

func init() {
	// Config file flag (processed first)
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCmd.Flags().StringVarP(&genDescription, "description", "d", "", "Self-description text (mutually exclusive with --input)")
	generateCmd.Flags().StringVarP(&genInputPath, "input", "i", "", "Path to a text file with the self-description (mutually exclusive with --description)")
	generateCmd.Flags().StringVarP(&genName, "name", "n", "", "Display name (overrides any name extracted from the description)")
	generateCmd.Flags().StringVar(&genGitHub, "github", "", "GitHub username")
	generateCmd.Flags().StringVar(&genLinkedIn, "linkedin", "", "LinkedIn profile URL")
	generateCmd.Flags().StringVar(&genPortfolio, "portfolio", "", "Portfolio website URL")
	generateCmd.Flags().StringVar(&genEmail, "email", "", "Contact email address")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "README.md", "Path to write the generated README")
	generateCmd.Flags().StringVar(&genBundle, "bundle", "", "Also write a deployable zip bundle to this path")
	generateCmd.Flags().StringVar(&genPreview, "preview", "", "Also write a rendered PNG preview to this path (requires --token and Chrome)")
	generateCmd.Flags().StringVar(&genToken, "token", "", "GitHub token for markdown rendering (optional, defaults to GITHUB_TOKEN env var)")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	// Step 3: Resolve the description text
	if genDescription != "" && genInputPath != "" {
		return fmt.Errorf("--description and --input are mutually exclusive; provide only one")
	}
	description := genDescription
	if genInputPath != "" {
		data, err := os.ReadFile(genInputPath)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		description = string(data)
	}
	if !validation.ValidDescriptionLength(description) {
		return fmt.Errorf("description must be between %d and %d characters",
			validation.MinDescriptionLength, validation.MaxDescriptionLength)
	}

	// Step 4: API Key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	client, err := llm.NewClient(ctx, llmConfigFrom(cfg), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	resolver, err := devicon.NewResolver(devicon.LoadCatalog(), resolverOptionsFrom(cfg))
	if err != nil {
		return fmt.Errorf("failed to create resolver: %w", err)
	}

	assembler, err := readme.NewAssembler(resolver, client)
	if err != nil {
		return fmt.Errorf("failed to create assembler: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)

	// Step 5: Extract structured profile data
	profile, err := parsing.ExtractProfile(ctx, client, description)
	if err != nil {
		return fmt.Errorf("profile extraction failed: %w", err)
	}

	// Explicit contact flags always win over whatever the model extracted
	if genName != "" {
		profile.Name = genName
	}
	if genGitHub != "" {
		profile.GitHub = genGitHub
	}
	if genLinkedIn != "" {
		profile.LinkedIn = genLinkedIn
	}
	if genPortfolio != "" {
		profile.Portfolio = genPortfolio
	}
	if genEmail != "" {
		profile.Email = genEmail
	}

	if cfg.Verbose || genVerbose {
		printer.PrintProfile(profile)
		printer.PrintResolution(resolver.ResolveBatch(profile.AllSkillStrings()))
	}

	// Step 6: Assemble the README
	rendered, err := assembler.Assemble(ctx, profile)
	if err != nil {
		return fmt.Errorf("readme assembly failed: %w", err)
	}

	if err := os.WriteFile(genOut, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "README written to: %s\n", genOut)

	if genBundle != "" {
		bundle, err := archive.BuildProfileBundle(rendered)
		if err != nil {
			return fmt.Errorf("failed to build bundle: %w", err)
		}
		if err := os.WriteFile(genBundle, bundle, 0644); err != nil {
			return fmt.Errorf("failed to write bundle: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Bundle written to: %s\n", genBundle)
	}

	if genPreview != "" {
		if err := writePreview(ctx, rendered, genPreview); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Preview written to: %s\n", genPreview)
	}

	return nil
}

// writePreview renders the README to HTML via the GitHub markdown API
// and screenshots it in a headless browser.
func writePreview(ctx context.Context, rendered, outPath string) error {
	token := genToken
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("--preview requires a GitHub token (--token flag or GITHUB_TOKEN env var)")
	}

	ghClient, err := github.NewClient(token, nil)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	html, err := ghClient.RenderMarkdown(ctx, rendered)
	if err != nil {
		return fmt.Errorf("markdown rendering failed: %w", err)
	}

	img, err := preview.Screenshot(ctx, html, preview.Options{})
	if err != nil {
		return fmt.Errorf("preview screenshot failed: %w", err)
	}

	if err := os.WriteFile(outPath, img, 0644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}
