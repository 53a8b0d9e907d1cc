package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eeris-project/eeris-cli/pkg/draft"
	"github.com/eeris-project/eeris-cli/pkg/ingest"
)

var uploadSubmit bool

// uploadCmd represents the upload command.
var uploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Upload a receipt image for extraction",
	Long: `Upload a receipt image and show the extracted expense entry.

The backend extracts the store, category and line items from the image.
Without --submit the extraction is only displayed, so it can be checked
and resubmitted manually with 'eeris submit'. With --submit the
extracted entry is submitted as-is.

Example:
  eeris upload receipt.jpg
  eeris upload receipt.jpg --submit`,
	Args: cobra.ExactArgs(1),
	Run:  runUpload,
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadSubmit, "submit", false, "submit the extracted entry immediately")
}

func runUpload(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot upload")

	path := args[0]
	file, err := os.Open(path)
	exitOnError(err, "failed to open receipt image")
	defer file.Close()

	slog.Info("Uploading receipt", "file", path)
	ext, err := app.client.UploadReceipt(commandContext(cmd), filepath.Base(path), file)
	exitOnError(err, "upload failed")

	catalog, err := draft.LoadCatalogOrDefault(app.paths.GetCategoriesFile())
	exitOnError(err, "failed to load category catalog")

	d := ingest.Adapt(ext, catalog)

	fmt.Println("\n=== Extracted Entry ===")
	fmt.Printf("Store:    %s\n", d.Store)
	fmt.Printf("Category: %s / %s\n", d.Category(), d.Subcategory())
	for _, it := range d.Ledger.Items() {
		fmt.Printf("  %-30s $%s\n", it.Name, it.Amount)
	}
	fmt.Printf("Total:    $%s\n", d.Ledger.TotalAmount())

	if !uploadSubmit {
		fmt.Println("\nRun again with --submit to file this entry, or adjust it with 'eeris submit'.")
		return
	}

	if !draft.CanSubmit(d) {
		exitOnError(fmt.Errorf("extraction produced no usable items"), "cannot submit")
	}

	err = app.client.SubmitManualReceipt(commandContext(cmd), manualRequest(d))
	exitOnError(err, "submission failed")

	fmt.Println("\nSubmitted.")
}
