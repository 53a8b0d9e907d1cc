// Package ingest turns OCR extraction results from the backend into
// editable expense drafts.
package ingest

import (
	"github.com/eeris-project/eeris-cli/pkg/draft"
	"github.com/eeris-project/eeris-cli/pkg/eeris"
)

// fallbackItemName labels the single synthetic line item created when an
// extraction carries a total but no itemized lines.
const fallbackItemName = "Extracted Item"

// Adapt converts a backend extraction into a draft ready for review.
//
// The extracted category is matched case-insensitively against the
// catalog; an unrecognized category falls back to the catalog's first
// entry. Item amounts are normalized to two decimal places, with
// unparsable values becoming "0.00". Adapt never fails: a mangled
// extraction still yields an editable draft the user can correct.
func Adapt(ext *eeris.ExtractionResponse, catalog *draft.Catalog) *draft.Draft {
	d := draft.New(catalog)
	d.Store = ext.StoreName
	// MatchOrDefault always returns a catalog category, so this cannot fail.
	_ = d.SetCategory(catalog.MatchOrDefault(ext.Category))

	if len(ext.Items) == 0 {
		d.Ledger = draft.NewLedger(draft.LineItem{
			Name:   fallbackItemName,
			Amount: draft.FormatAmount(ext.TotalAmount.String()),
		})
		return d
	}

	items := make([]draft.LineItem, 0, len(ext.Items))
	for _, it := range ext.Items {
		items = append(items, draft.LineItem{
			Name:   it.Name,
			Amount: draft.FormatAmount(it.Amount.String()),
		})
	}
	d.Ledger = draft.NewLedger(items...)
	return d
}
