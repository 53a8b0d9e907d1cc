package draft

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the fixed set of expense categories and their subcategory
// options. Order is significant: the first category is the fallback for
// unrecognized category names, and the first subcategory of a category is
// the default when the category changes.
type Catalog struct {
	categories    []string
	subcategories map[string][]string
}

// categoryEntry is the YAML representation of a catalog entry.
type categoryEntry struct {
	Name          string   `yaml:"name"`
	Subcategories []string `yaml:"subcategories"`
}

// catalogFile is the YAML representation of a catalog file.
type catalogFile struct {
	Categories []categoryEntry `yaml:"categories"`
}

// DefaultCatalog returns the built-in category set.
func DefaultCatalog() *Catalog {
	return &Catalog{
		categories: []string{"Groceries", "Gas", "Furniture", "Transportation"},
		subcategories: map[string][]string{
			"Groceries":      {"Food", "Meals", "Drinks", "Non-Food Items"},
			"Gas":            {"Regular", "Premium", "Diesel"},
			"Furniture":      {"Chairs", "Tables", "Beds"},
			"Transportation": {"Flight", "Taxi", "Train"},
		},
	}
}

// LoadCatalog loads a catalog from a YAML configuration file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no categories", path)
	}

	catalog := &Catalog{
		subcategories: make(map[string][]string, len(file.Categories)),
	}
	for _, entry := range file.Categories {
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog file %s contains a category without a name", path)
		}
		if len(entry.Subcategories) == 0 {
			return nil, fmt.Errorf("category %q defines no subcategories", entry.Name)
		}
		catalog.categories = append(catalog.categories, entry.Name)
		catalog.subcategories[entry.Name] = entry.Subcategories
	}

	return catalog, nil
}

// LoadCatalogOrDefault loads a catalog from path if the file exists,
// falling back to the built-in set otherwise.
func LoadCatalogOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultCatalog(), nil
	}
	return LoadCatalog(path)
}

// Categories returns the category names in catalog order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Subcategories returns the subcategory options for a category,
// nil if the category is unknown.
func (c *Catalog) Subcategories(category string) []string {
	subs, ok := c.subcategories[category]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// First returns the first category in the catalog.
func (c *Catalog) First() string {
	return c.categories[0]
}

// FirstSubcategory returns the first subcategory option for a category,
// empty string if the category is unknown.
func (c *Catalog) FirstSubcategory(category string) string {
	subs := c.subcategories[category]
	if len(subs) == 0 {
		return ""
	}
	return subs[0]
}

// Match finds the catalog category matching name case-insensitively.
func (c *Catalog) Match(name string) (string, bool) {
	for _, category := range c.categories {
		if strings.EqualFold(category, name) {
			return category, true
		}
	}
	return "", false
}

// MatchOrDefault finds the catalog category matching name
// case-insensitively, falling back to the first category when there is
// no match.
func (c *Catalog) MatchOrDefault(name string) string {
	if category, ok := c.Match(name); ok {
		return category
	}
	return c.First()
}

// HasSubcategory reports whether sub is a valid option for category.
func (c *Catalog) HasSubcategory(category, sub string) bool {
	for _, s := range c.subcategories[category] {
		if s == sub {
			return true
		}
	}
	return false
}
