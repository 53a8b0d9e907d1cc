package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display spending statistics",
	Long: `Display spending statistics.

Shows per-category totals and approval counts. Supervisors and admins
additionally see per-store and per-user breakdowns.

Example:
  eeris stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot fetch statistics")

	stats, err := app.client.Statistics(commandContext(cmd))
	exitOnError(err, "failed to fetch statistics")

	fmt.Println("\n=== Spending Statistics ===")
	fmt.Printf("Approved: %d  Rejected: %d  Pending: %d\n", stats.Approvals, stats.Rejections, stats.Pending)

	if len(stats.CategoryTotals) > 0 {
		fmt.Println("\nBy category:")
		printTotals(stats.CategoryTotals)
	}

	if len(stats.StoreTotals) > 0 {
		fmt.Println("\nBy store:")
		for _, store := range sortedKeys(stats.StoreTotals) {
			line := fmt.Sprintf("  %-20s $%.2f", store, stats.StoreTotals[store])
			if top, ok := stats.StoreMainCategories[store]; ok {
				line += fmt.Sprintf("  (mostly %s)", top)
			}
			fmt.Println(line)
		}
	}

	if len(stats.UserTotals) > 0 {
		fmt.Println("\nBy user:")
		printTotals(stats.UserTotals)
	}

	fmt.Println()
}

func printTotals(totals map[string]float64) {
	for _, key := range sortedKeys(totals) {
		fmt.Printf("  %-20s $%.2f\n", key, totals[key])
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
