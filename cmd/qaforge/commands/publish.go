package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/qaforge/qaforge/config"
	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/publish"
)

// PublishCmd groups the Google Workspace push operations
var PublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Push artifacts into existing Google documents",
}

var replaceDocCmd = &cobra.Command{
	Use:   "replace-doc <document-id> <file>",
	Short: "Replace the full content of an existing Google Doc",
	Args:  cobra.ExactArgs(2),
	RunE:  runReplaceDoc,
}

var updateSheetCmd = &cobra.Command{
	Use:   "update-sheet <spreadsheet-id> <csv-file>",
	Short: "Clear and repopulate an existing Google Sheet from a CSV file",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdateSheet,
}

func init() {
	PublishCmd.AddCommand(replaceDocCmd)
	PublishCmd.AddCommand(updateSheetCmd)
}

// newPublisher builds a publisher from config, failing when no
// credentials are available since these commands are useless without.
func newPublisher(cmd *cobra.Command) (*publish.Publisher, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	creds, err := publish.ResolveCredentials(cmd.Context(), cfg.Publish.CredentialsFile)
	if err != nil {
		return nil, err
	}
	if !creds.Available() {
		return nil, errors.Wrap(errors.ErrPublishUnavailable,
			"no Google credentials found (set GOOGLE_CREDENTIALS or provide a credentials file)")
	}

	return publish.NewPublisher(cmd.Context(), creds, cfg.Publish.ShareAnyone)
}

func runReplaceDoc(cmd *cobra.Command, args []string) error {
	documentID, file := args[0], args[1]

	content, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", file)
	}

	publisher, err := newPublisher(cmd)
	if err != nil {
		return err
	}

	pterm.Info.Printf("Replacing content of document %s...\n", documentID)
	result := publisher.ReplaceDocument(cmd.Context(), documentID, string(content))
	if result.Status != publish.StatusSuccess {
		return errors.Newf("replace failed: %s", result.Err)
	}

	pterm.Success.Println("Content replaced")
	pterm.Info.Printf("View: %s\n", result.URL)
	return nil
}

func runUpdateSheet(cmd *cobra.Command, args []string) error {
	spreadsheetID, file := args[0], args[1]

	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", file)
	}

	publisher, err := newPublisher(cmd)
	if err != nil {
		return err
	}

	pterm.Info.Printf("Updating spreadsheet %s...\n", spreadsheetID)
	result := publisher.UpdateSheet(cmd.Context(), spreadsheetID, data)
	if result.Status != publish.StatusSuccess {
		return errors.Newf("update failed: %s", result.Err)
	}

	pterm.Success.Println("Sheet updated")
	pterm.Info.Printf("View: %s\n", result.URL)
	return nil
}
