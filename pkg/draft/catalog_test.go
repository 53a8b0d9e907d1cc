package draft

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogMatch(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		input    string
		expected string
		found    bool
	}{
		{"Groceries", "Groceries", true},
		{"groceries", "Groceries", true},
		{"GAS", "Gas", true},
		{"transportation", "Transportation", true},
		{"BOGUS", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := catalog.Match(tt.input)
			if ok != tt.found || got != tt.expected {
				t.Errorf("Match(%q) = (%q, %v), expected (%q, %v)", tt.input, got, ok, tt.expected, tt.found)
			}
		})
	}
}

func TestMatchOrDefaultFallsBackToFirst(t *testing.T) {
	catalog := DefaultCatalog()

	if got := catalog.MatchOrDefault("BOGUS"); got != "Groceries" {
		t.Errorf("MatchOrDefault(BOGUS) = %q, expected Groceries", got)
	}
	if got := catalog.MatchOrDefault("furniture"); got != "Furniture" {
		t.Errorf("MatchOrDefault(furniture) = %q, expected Furniture", got)
	}
}

func TestDefaultCatalogSubcategories(t *testing.T) {
	catalog := DefaultCatalog()

	subs := catalog.Subcategories("Gas")
	if len(subs) != 3 || subs[0] != "Regular" {
		t.Errorf("Subcategories(Gas) = %v", subs)
	}
	if catalog.FirstSubcategory("Groceries") != "Food" {
		t.Errorf("FirstSubcategory(Groceries) = %q", catalog.FirstSubcategory("Groceries"))
	}
	if catalog.Subcategories("Unknown") != nil {
		t.Error("Subcategories of an unknown category should be nil")
	}
	if !catalog.HasSubcategory("Furniture", "Beds") {
		t.Error("HasSubcategory(Furniture, Beds) should be true")
	}
	if catalog.HasSubcategory("Furniture", "Food") {
		t.Error("HasSubcategory(Furniture, Food) should be false")
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	content := `categories:
  - name: Office
    subcategories: [Paper, Toner]
  - name: Travel
    subcategories: [Hotel, Taxi]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() returned error: %v", err)
	}

	if catalog.First() != "Office" {
		t.Errorf("First() = %q, expected Office", catalog.First())
	}
	if got := catalog.MatchOrDefault("travel"); got != "Travel" {
		t.Errorf("MatchOrDefault(travel) = %q", got)
	}
	if got := catalog.MatchOrDefault("groceries"); got != "Office" {
		t.Errorf("MatchOrDefault(groceries) = %q, expected fallback to first", got)
	}
}

func TestLoadCatalogRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Error("LoadCatalog() should reject a file with no categories")
	}
}

func TestLoadCatalogOrDefault(t *testing.T) {
	catalog, err := LoadCatalogOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalogOrDefault() returned error: %v", err)
	}
	if catalog.First() != "Groceries" {
		t.Errorf("missing file should fall back to the default catalog, got first = %q", catalog.First())
	}
}
