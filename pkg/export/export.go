// Package export renders the expense history into a PDF report with a
// per-category spending chart.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/eeris-project/eeris-cli/pkg/eeris"
	"github.com/eeris-project/eeris-cli/pkg/pathutil"
	"github.com/eeris-project/eeris-cli/pkg/session"
)

var (
	// ErrNoEntries is returned when there is no history to export.
	ErrNoEntries = errors.New("no expense history to export")

	// ErrInFlight is returned when an export is already running.
	ErrInFlight = errors.New("an export is already in progress")

	// ErrRenderChart is returned when the category chart cannot be drawn.
	ErrRenderChart = errors.New("failed to render category chart")

	// ErrEmbedChart is returned when the chart image cannot be placed
	// into the document.
	ErrEmbedChart = errors.New("failed to embed category chart")
)

// Entry is one row of the exported expense history.
type Entry struct {
	UserName   string
	Store      string
	Category   string
	Amount     float64
	Status     string
	UploadedAt string
}

// FromHistory converts backend history records into export rows.
func FromHistory(history []eeris.HistoryEntry) []Entry {
	entries := make([]Entry, 0, len(history))
	for _, h := range history {
		entries = append(entries, Entry{
			UserName:   h.UserName,
			Store:      h.StoreName,
			Category:   h.Category,
			Amount:     h.Amount.Float(),
			Status:     h.Status,
			UploadedAt: h.UploadedAt,
		})
	}
	return entries
}

// Columns returns the table header for the given role. Elevated roles
// see every user's history, so their table carries a User column.
func Columns(role session.Role) []string {
	columns := []string{"#"}
	if role == session.RoleSupervisor || role == session.RoleAdmin {
		columns = append(columns, "User")
	}
	return append(columns, "Store", "Category", "Amount", "Status", "Uploaded")
}

// CategoryTotals sums entry amounts per category.
func CategoryTotals(entries []Entry) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range entries {
		totals[e.Category] += e.Amount
	}
	return totals
}

// sortedCategories returns the chart's category order: alphabetical,
// so repeated exports of the same history are identical.
func sortedCategories(totals map[string]float64) []string {
	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// Pipeline produces expense report PDFs under the exports directory.
// Runs are serialized: a second Export call while one is still writing
// fails with ErrInFlight instead of racing on the output file.
type Pipeline struct {
	paths    *pathutil.PathResolver
	inFlight atomic.Bool
}

// NewPipeline creates a pipeline writing into the resolver's exports
// directory.
func NewPipeline(paths *pathutil.PathResolver) *Pipeline {
	return &Pipeline{paths: paths}
}

// Export renders the entries into a timestamped PDF and returns its
// path. The chart is drawn before the document is assembled, so the
// returned file is always complete.
func (p *Pipeline) Export(entries []Entry, role session.Role) (string, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return "", ErrInFlight
	}
	defer p.inFlight.Store(false)

	if len(entries) == 0 {
		return "", ErrNoEntries
	}

	runID := uuid.NewString()
	slog.Info("starting expense export", "run_id", runID, "entries", len(entries), "role", string(role))

	totals := CategoryTotals(entries)
	chart, err := renderChart(totals)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderChart, err)
	}

	outPath := p.paths.GetExportFilePath(time.Now())
	if err := p.paths.EnsureParentDir(outPath); err != nil {
		return "", fmt.Errorf("failed to prepare exports directory: %w", err)
	}
	if err := buildDocument(outPath, entries, role, chart); err != nil {
		return "", err
	}

	slog.Info("expense export complete", "run_id", runID, "path", outPath)
	return outPath, nil
}
