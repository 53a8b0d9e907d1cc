package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eeris-project/eeris-cli/pkg/export"
)

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the expense history",
	Long: `Show the expense history.

Employees see their own entries; supervisors and admins see everyone's,
with the submitting user shown per entry.

Example:
  eeris history`,
	Run: runHistory,
}

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the expense history to PDF",
	Long: `Export the expense history to a timestamped PDF report.

The report contains the history table followed by a per-category
spending chart. Files are written to the exports directory under the
data root.

Example:
  eeris export`,
	Run: runExport,
}

func runHistory(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot fetch history")

	entries, err := app.client.ExpenseHistory(commandContext(cmd), app.sess.SeesAllHistory())
	exitOnError(err, "failed to fetch history")

	if len(entries) == 0 {
		fmt.Println("No expense history")
		return
	}

	allUsers := app.sess.SeesAllHistory()
	if allUsers {
		fmt.Printf("%-16s %-20s %-14s %-10s %-10s %s\n", "User", "Store", "Category", "Amount", "Status", "Uploaded")
	} else {
		fmt.Printf("%-20s %-14s %-10s %-10s %s\n", "Store", "Category", "Amount", "Status", "Uploaded")
	}
	for _, e := range entries {
		if allUsers {
			fmt.Printf("%-16s %-20s %-14s $%-9.2f %-10s %s\n",
				e.UserName, e.StoreName, e.Category, e.Amount.Float(), e.Status, e.UploadedAt)
		} else {
			fmt.Printf("%-20s %-14s $%-9.2f %-10s %s\n",
				e.StoreName, e.Category, e.Amount.Float(), e.Status, e.UploadedAt)
		}
	}
}

func runExport(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot export")

	slog.Info("Fetching history for export")
	entries, err := app.client.ExpenseHistory(commandContext(cmd), app.sess.SeesAllHistory())
	exitOnError(err, "failed to fetch history")

	pipeline := export.NewPipeline(app.paths)
	path, err := pipeline.Export(export.FromHistory(entries), app.sess.Role())
	if errors.Is(err, export.ErrNoEntries) {
		fmt.Println("No expense history to export")
		return
	}
	exitOnError(err, "export failed")

	fmt.Printf("Exported %d entries to %s\n", len(entries), path)
}
