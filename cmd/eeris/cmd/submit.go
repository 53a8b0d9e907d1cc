package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eeris-project/eeris-cli/pkg/draft"
	"github.com/eeris-project/eeris-cli/pkg/eeris"
)

var (
	submitStore       string
	submitCategory    string
	submitSubcategory string
	submitItems       []string
)

// submitCmd represents the submit command.
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a manual expense entry",
	Long: `Submit a manual expense entry without a receipt image.

Each --item takes the form NAME=AMOUNT. The entry must carry at least
one item with both a name and an amount, and the total must be greater
than zero.

Example:
  eeris submit --store Publix --category Groceries --item "Milk=2.50" --item "Bread=3.00"`,
	Run: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitStore, "store", "", "store name (required)")
	submitCmd.Flags().StringVar(&submitCategory, "category", "", "expense category (default: first catalog entry)")
	submitCmd.Flags().StringVar(&submitSubcategory, "subcategory", "", "expense subcategory (default: category's first option)")
	submitCmd.Flags().StringArrayVar(&submitItems, "item", nil, "line item as NAME=AMOUNT (repeatable, required)")
	submitCmd.MarkFlagRequired("store")
	submitCmd.MarkFlagRequired("item")
}

func runSubmit(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot submit")

	d, err := buildDraft(app)
	exitOnError(err, "invalid expense entry")

	if !draft.CanSubmit(d) {
		exitOnError(fmt.Errorf("entry needs at least one named item with an amount and a total above zero"), "cannot submit")
	}

	req := manualRequest(d)
	slog.Info("Submitting expense", "store", req.Store, "category", req.Category, "items", len(req.Items), "total", d.Ledger.TotalAmount())

	err = app.client.SubmitManualReceipt(commandContext(cmd), req)
	exitOnError(err, "submission failed")

	fmt.Printf("Submitted %d item(s) for %s, total $%s\n", len(req.Items), req.Store, d.Ledger.TotalAmount())
}

// buildDraft assembles a draft from the submit flags against the local
// category catalog.
func buildDraft(app *app) (*draft.Draft, error) {
	catalog, err := draft.LoadCatalogOrDefault(app.paths.GetCategoriesFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load category catalog: %w", err)
	}

	d := draft.New(catalog)
	d.Store = submitStore

	if submitCategory != "" {
		if err := d.SetCategory(submitCategory); err != nil {
			return nil, err
		}
	}
	if submitSubcategory != "" {
		if err := d.SetSubcategory(submitSubcategory); err != nil {
			return nil, err
		}
	}

	items := make([]draft.LineItem, 0, len(submitItems))
	for _, spec := range submitItems {
		name, amount, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid item %q: expected NAME=AMOUNT", spec)
		}
		items = append(items, draft.LineItem{
			Name:   strings.TrimSpace(name),
			Amount: draft.FormatAmount(amount),
		})
	}
	d.Ledger = draft.NewLedger(items...)

	return d, nil
}

// manualRequest converts a draft to the backend's submission payload.
func manualRequest(d *draft.Draft) eeris.ManualReceiptRequest {
	items := d.Ledger.Items()
	reqItems := make([]eeris.ManualReceiptItem, 0, len(items))
	for _, it := range items {
		reqItems = append(reqItems, eeris.ManualReceiptItem{Name: it.Name, Amount: it.Amount})
	}
	return eeris.ManualReceiptRequest{
		Category:    d.Category(),
		Subcategory: d.Subcategory(),
		Store:       d.Store,
		Items:       reqItems,
	}
}
