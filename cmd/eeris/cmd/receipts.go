package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eeris-project/eeris-cli/pkg/eeris"
)

// receiptsCmd groups receipt review operations.
var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "List and review receipts",
	Long: `List and review receipts.

Employees see their own receipts; supervisors and admins see everyone's
and can approve or reject pending ones.

Example:
  eeris receipts list
  eeris receipts approve 42`,
}

var receiptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List receipts visible to the current role",
	Run:   runReceiptsList,
}

var receiptsDetailsCmd = &cobra.Command{
	Use:   "details ID",
	Short: "Show the line items of a receipt",
	Args:  cobra.ExactArgs(1),
	Run:   runReceiptsDetails,
}

var receiptsApproveCmd = &cobra.Command{
	Use:   "approve ID",
	Short: "Approve a receipt",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runReceiptsStatus(cmd, args, eeris.StatusApproved)
	},
}

var receiptsRejectCmd = &cobra.Command{
	Use:   "reject ID",
	Short: "Reject a receipt",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runReceiptsStatus(cmd, args, eeris.StatusRejected)
	},
}

var receiptsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a receipt",
	Args:  cobra.ExactArgs(1),
	Run:   runReceiptsDelete,
}

func init() {
	receiptsCmd.AddCommand(receiptsListCmd)
	receiptsCmd.AddCommand(receiptsDetailsCmd)
	receiptsCmd.AddCommand(receiptsApproveCmd)
	receiptsCmd.AddCommand(receiptsRejectCmd)
	receiptsCmd.AddCommand(receiptsDeleteCmd)
}

func parseReceiptID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid receipt ID %q", arg)
	}
	return id, nil
}

func runReceiptsList(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot list receipts")

	resp, err := app.client.FetchReceipts(commandContext(cmd))
	exitOnError(err, "failed to fetch receipts")

	if len(resp.Receipts) == 0 {
		fmt.Println("No receipts")
		return
	}

	fmt.Printf("%-6s %-6s %-20s %-14s %-10s %s\n", "ID", "User", "Store", "Category", "Amount", "Status")
	for _, r := range resp.Receipts {
		fmt.Printf("%-6d %-6d %-20s %-14s $%-9.2f %s\n",
			r.ID, r.UserID, r.StoreName, r.Category, r.Amount.Float(), r.Status)
	}

	if len(resp.UserTotals) > 0 {
		fmt.Println("\nPer-user totals:")
		for user, total := range resp.UserTotals {
			fmt.Printf("  %-16s $%.2f\n", user, total)
		}
	}
}

func runReceiptsDetails(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot fetch receipt details")

	id, err := parseReceiptID(args[0])
	exitOnError(err, "cannot fetch receipt details")

	resp, err := app.client.ReceiptDetails(commandContext(cmd), id)
	exitOnError(err, "failed to fetch receipt details")

	if resp.UserName != "" {
		fmt.Printf("Receipt %d (%s)\n", id, resp.UserName)
	} else {
		fmt.Printf("Receipt %d\n", id)
	}
	for _, it := range resp.Items {
		fmt.Printf("  %-30s $%s\n", it.Name, it.Amount)
	}
}

func runReceiptsStatus(cmd *cobra.Command, args []string, status string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot update receipt")
	if !app.sess.CanReview() {
		exitOnError(fmt.Errorf("requires a supervisor or admin role"), "cannot update receipt")
	}

	id, err := parseReceiptID(args[0])
	exitOnError(err, "cannot update receipt")

	slog.Info("Updating receipt status", "id", id, "status", status)
	err = app.client.UpdateReceiptStatus(commandContext(cmd), id, status)
	exitOnError(err, "failed to update receipt status")

	fmt.Printf("Receipt %d marked %s\n", id, status)
}

func runReceiptsDelete(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot delete receipt")

	id, err := parseReceiptID(args[0])
	exitOnError(err, "cannot delete receipt")

	if !confirm(fmt.Sprintf("Delete receipt %d?", id)) {
		fmt.Println("Aborted")
		return
	}

	err = app.client.DeleteReceipt(commandContext(cmd), id)
	exitOnError(err, "failed to delete receipt")

	fmt.Printf("Receipt %d deleted\n", id)
}
