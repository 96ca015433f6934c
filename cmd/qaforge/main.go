package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qaforge/qaforge/cmd/qaforge/commands"
	"github.com/qaforge/qaforge/logger"
)

var rootCmd = &cobra.Command{
	Use:   "qaforge",
	Short: "qaforge - QA documentation generator",
	Long: `qaforge turns free-text requirements into QA documentation:
a test plan, a test-case table, and exploratory testing charters.

Artifacts are written as timestamped local files and, when Google
service-account credentials are configured, mirrored to Google Docs
and Sheets.

Available commands:
  server   - Start the HTTP API server
  generate - Generate documentation from a requirement file or stdin
  publish  - Push artifacts into existing Google documents
  cleanup  - Delete files from the service account's Drive
  version  - Show version information

Examples:
  qaforge server                        # Start the API on the configured port
  qaforge generate -f requirement.txt   # Generate artifacts locally
  qaforge cleanup --yes                 # Clear the service account's Drive`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(false); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.ServerCmd)
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.PublishCmd)
	rootCmd.AddCommand(commands.CleanupCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
