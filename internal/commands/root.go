package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/buildinfo"
	"github.com/pocketbook-dev/pocketbook/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pocketbook",
		Short:   "A child's allowance book",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSessionCommand())
	rootCmd.AddCommand(newCategoriesCommand())

	return rootCmd
}

// defaultConfigPath honours POCKETBOOK_CONFIG, then falls back to ./pocketbook.yaml.
func defaultConfigPath() string {
	if p := os.Getenv(config.EnvPath); p != "" {
		return p
	}
	return config.FileName
}
