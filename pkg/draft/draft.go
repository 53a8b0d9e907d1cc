package draft

import "fmt"

// Draft is the active expense entry form state. It is owned by one entry
// session: discarded after a successful submission, never persisted.
type Draft struct {
	catalog     *Catalog
	category    string
	subcategory string
	Store       string
	Ledger      *Ledger
}

// New creates an empty draft with the catalog's first category and that
// category's first subcategory selected.
func New(catalog *Catalog) *Draft {
	first := catalog.First()
	return &Draft{
		catalog:     catalog,
		category:    first,
		subcategory: catalog.FirstSubcategory(first),
		Ledger:      NewLedger(),
	}
}

// Category returns the selected category.
func (d *Draft) Category() string {
	return d.category
}

// Subcategory returns the selected subcategory.
func (d *Draft) Subcategory() string {
	return d.subcategory
}

// SetCategory selects a category (matched case-insensitively against the
// catalog) and resets the subcategory to that category's first option.
func (d *Draft) SetCategory(name string) error {
	category, ok := d.catalog.Match(name)
	if !ok {
		return fmt.Errorf("unknown category %q", name)
	}

	d.category = category
	d.subcategory = d.catalog.FirstSubcategory(category)
	return nil
}

// SetSubcategory selects a subcategory, which must belong to the current
// category's option set.
func (d *Draft) SetSubcategory(name string) error {
	if !d.catalog.HasSubcategory(d.category, name) {
		return fmt.Errorf("subcategory %q is not valid for category %q", name, d.category)
	}

	d.subcategory = name
	return nil
}
