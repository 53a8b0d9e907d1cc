package ingest

import (
	"testing"

	"github.com/eeris-project/eeris-cli/pkg/draft"
	"github.com/eeris-project/eeris-cli/pkg/eeris"
)

func TestAdaptItemizedExtraction(t *testing.T) {
	catalog := draft.DefaultCatalog()
	ext := &eeris.ExtractionResponse{
		StoreName: "Publix",
		Category:  "groceries",
		Items: []eeris.ExtractionItem{
			{Name: "Milk", Amount: "2.5"},
			{Name: "Bread", Amount: "3"},
		},
		TotalAmount: "5.5",
	}

	d := Adapt(ext, catalog)

	if d.Store != "Publix" {
		t.Errorf("Store = %q", d.Store)
	}
	if d.Category() != "Groceries" {
		t.Errorf("Category() = %q, expected canonical catalog name", d.Category())
	}

	items := d.Ledger.Items()
	if len(items) != 2 {
		t.Fatalf("Items() has %d entries, expected 2", len(items))
	}
	if items[0].Name != "Milk" || items[0].Amount != "2.50" {
		t.Errorf("items[0] = %+v, amounts should be normalized to two decimals", items[0])
	}
	if items[1].Amount != "3.00" {
		t.Errorf("items[1].Amount = %q", items[1].Amount)
	}
}

func TestAdaptWithoutItemsFallsBackToTotal(t *testing.T) {
	catalog := draft.DefaultCatalog()
	ext := &eeris.ExtractionResponse{
		StoreName:   "Shell",
		Category:    "gas",
		TotalAmount: "12.3",
	}

	d := Adapt(ext, catalog)

	items := d.Ledger.Items()
	if len(items) != 1 {
		t.Fatalf("Items() has %d entries, expected a single fallback item", len(items))
	}
	if items[0].Name != "Extracted Item" || items[0].Amount != "12.30" {
		t.Errorf("fallback item = %+v", items[0])
	}
	if d.Category() != "Gas" {
		t.Errorf("Category() = %q", d.Category())
	}
}

func TestAdaptUnknownCategoryFallsBackToFirst(t *testing.T) {
	catalog := draft.DefaultCatalog()
	ext := &eeris.ExtractionResponse{Category: "BOGUS", TotalAmount: "1"}

	d := Adapt(ext, catalog)

	if d.Category() != catalog.First() {
		t.Errorf("Category() = %q, expected fallback to %q", d.Category(), catalog.First())
	}
	if d.Subcategory() != catalog.FirstSubcategory(catalog.First()) {
		t.Errorf("Subcategory() = %q, expected the category's first option", d.Subcategory())
	}
}

func TestAdaptMalformedAmounts(t *testing.T) {
	catalog := draft.DefaultCatalog()
	ext := &eeris.ExtractionResponse{
		Category: "groceries",
		Items: []eeris.ExtractionItem{
			{Name: "Smudged line", Amount: ""},
			{Name: "Milk", Amount: "2.5"},
		},
	}

	d := Adapt(ext, catalog)

	items := d.Ledger.Items()
	if items[0].Amount != "0.00" {
		t.Errorf("unparsable amount became %q, expected 0.00", items[0].Amount)
	}
	if d.Ledger.Total() != 2.5 {
		t.Errorf("Total() = %v, unparsable lines must count as zero", d.Ledger.Total())
	}
}
