package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/humuslab/humus"
)

var (
	vaultFlag string
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "humus",
	Short: "A section and item editor for Markdown + Frontmatter vaults",
	Long: `Humus treats a directory of Markdown notes as a structured document store.
It edits heading-delimited sections and "### item" blocks surgically, with
atomic writes and timestamped backups.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// vaultPath resolves the vault directory: the --vault flag wins, then the
// HUMUS_VAULT environment variable (a .env file in the working directory is
// loaded first), then the working directory itself.
func vaultPath() (string, error) {
	if vaultFlag != "" {
		return vaultFlag, nil
	}

	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	if env := os.Getenv("HUMUS_VAULT"); env != "" {
		return env, nil
	}

	return os.Getwd()
}

// openVault builds a Service against an existing vault, with the default
// logger already configured by PersistentPreRun.
func openVault() (*humus.Service, error) {
	path, err := vaultPath()
	if err != nil {
		return nil, err
	}
	return humus.New(path,
		humus.WithMustExist(true),
		humus.WithLogger(slog.Default()),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault directory (default: $HUMUS_VAULT or CWD)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
