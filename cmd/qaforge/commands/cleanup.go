package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// CleanupCmd deletes all files from the service account's Drive.
// Service accounts carry their own storage quota, and every published
// artifact counts against it until removed.
var CleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete all files from the service account's Google Drive",
	Long:  `List every file owned by the configured service account and delete them to free storage quota. Asks for confirmation unless --yes is given.`,
	RunE:  runCleanup,
}

var cleanupYes bool

func init() {
	CleanupCmd.Flags().BoolVarP(&cleanupYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runCleanup(cmd *cobra.Command, args []string) error {
	publisher, err := newPublisher(cmd)
	if err != nil {
		return err
	}

	pterm.Info.Println("Fetching files from the service account's Drive...")
	files, err := publisher.ListFiles(cmd.Context())
	if err != nil {
		return err
	}

	if len(files) == 0 {
		pterm.Success.Println("No files found, Drive is already clean")
		return nil
	}

	var totalSize int64
	rows := pterm.TableData{{"Name", "Type", "Created", "Size"}}
	for _, f := range files {
		totalSize += f.Size
		rows = append(rows, []string{f.Name, f.MimeType, f.CreatedTime, byteCountMB(f.Size)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	pterm.Info.Printf("Found %d files, %s total\n", len(files), byteCountMB(totalSize))

	if !cleanupYes {
		confirmed, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Delete ALL files from the service account's Drive?").
			Show()
		if !confirmed {
			pterm.Warning.Println("Cancelled")
			return nil
		}
	}

	report := publisher.DeleteAll(cmd.Context(), files)
	if report.Failed > 0 {
		pterm.Warning.Printf("Deleted %d files, %d failed\n", report.Deleted, report.Failed)
		return nil
	}
	pterm.Success.Printf("Deleted %d files, freed %s\n", report.Deleted, byteCountMB(report.Bytes))
	return nil
}

// byteCountMB formats a byte count as megabytes
func byteCountMB(n int64) string {
	return pterm.Sprintf("%.2f MB", float64(n)/(1024*1024))
}
