package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-forge/internal/bot"
	"github.com/jonathan/profile-forge/internal/config"
	"github.com/jonathan/profile-forge/internal/devicon"
	"github.com/jonathan/profile-forge/internal/llm"
	"github.com/jonathan/profile-forge/internal/readme"
	"github.com/jonathan/profile-forge/internal/stt"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run the profile conversation interactively in the terminal",
	Long: `Starts the guided conversation on stdin/stdout: the bot collects your contact details and self-description, then builds the README.

Type 'quit' or 'exit' at any prompt to abandon the session.`,
	RunE: runChat,
}

var (
	chatConfigPath string
	chatAPIKey     string
	chatOut        string
)

func init() {
	chatCmd.Flags().StringVar(&chatConfigPath, "config", "", "Path to config.json file")
	chatCmd.Flags().StringVar(&chatAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	chatCmd.Flags().StringVarP(&chatOut, "out", "o", "README.md", "Path to write the README when the conversation completes")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if chatConfigPath != "" {
		loadedCfg, err := config.LoadConfig(chatConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = chatAPIKey
	}
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

	transcriber, err := stt.NewLLMTranscriber(client)
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	engine, err := bot.NewEngine(client, transcriber, assembler)
	if err != nil {
		return fmt.Errorf("failed to create dialogue engine: %w", err)
	}

	session := bot.NewManager().Create()

	// The empty first turn moves the session out of its start state and
	// produces the greeting.
	turn, err := engine.Advance(ctx, session, bot.Message{})
	if err != nil {
		return fmt.Errorf("conversation failed: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "\n%s\n", turn.Text)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for !turn.Done {
		_, _ = fmt.Fprint(os.Stdout, "\n> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			_, _ = fmt.Fprintln(os.Stdout, "\nSession abandoned.")
			return nil
		}

		input := strings.TrimSpace(scanner.Text())
		if lower := strings.ToLower(input); lower == "quit" || lower == "exit" {
			_, _ = fmt.Fprintln(os.Stdout, "Session abandoned.")
			return nil
		}

		turn, err = engine.Advance(ctx, session, bot.Message{Text: input})
		if err != nil {
			return fmt.Errorf("conversation failed: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "\n%s\n", turn.Text)
	}

	if turn.Readme == "" {
		return nil
	}
	if err := os.WriteFile(chatOut, []byte(turn.Readme), 0644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "\nREADME written to: %s\n", chatOut)

	return nil
}
