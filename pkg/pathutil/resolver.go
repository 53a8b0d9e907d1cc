// Package pathutil provides centralized path management for the EERIS client's
// local data directory (state database, exported documents, category catalog).
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// PathResolver manages paths under the EERIS data root.
type PathResolver struct {
	dataRoot       string
	databasePath   string
	exportsDir     string
	categoriesFile string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// DataRoot is the root directory for all local client data (e.g., ~/.eeris)
	DataRoot string
	// DatabasePath is the path to the SQLite database file for client state
	DatabasePath string
	// ExportsDir is the directory where exported documents are written
	ExportsDir string
	// CategoriesFile is the path to the category catalog YAML file
	CategoriesFile string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {DataRoot}/state/eeris.db
// If ExportsDir is empty, it defaults to {DataRoot}/exports
// If CategoriesFile is empty, it defaults to {DataRoot}/categories.yaml
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.DataRoot, "state", "eeris.db")
	}

	exportsDir := config.ExportsDir
	if exportsDir == "" {
		exportsDir = filepath.Join(config.DataRoot, "exports")
	}

	categoriesFile := config.CategoriesFile
	if categoriesFile == "" {
		categoriesFile = filepath.Join(config.DataRoot, "categories.yaml")
	}

	return &PathResolver{
		dataRoot:       config.DataRoot,
		databasePath:   dbPath,
		exportsDir:     exportsDir,
		categoriesFile: categoriesFile,
	}
}

// FromEnv creates a PathResolver from environment variables.
// Expected environment variables:
//   - EERIS_DATA_ROOT: Root directory for client data (required)
//   - EERIS_DB_PATH: Database file path (optional)
//   - EERIS_EXPORTS_DIR: Exports directory (optional)
//   - EERIS_CATEGORIES_FILE: Category catalog file (optional)
func FromEnv() (*PathResolver, error) {
	dataRoot := os.Getenv("EERIS_DATA_ROOT")
	if dataRoot == "" {
		return nil, fmt.Errorf("EERIS_DATA_ROOT environment variable is required")
	}

	return New(Config{
		DataRoot:       dataRoot,
		DatabasePath:   os.Getenv("EERIS_DB_PATH"),
		ExportsDir:     os.Getenv("EERIS_EXPORTS_DIR"),
		CategoriesFile: os.Getenv("EERIS_CATEGORIES_FILE"),
	}), nil
}

// GetDataRoot returns the data root directory.
func (p *PathResolver) GetDataRoot() string {
	return p.dataRoot
}

// GetDatabasePath returns the database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetExportsDir returns the exports directory.
func (p *PathResolver) GetExportsDir() string {
	return p.exportsDir
}

// GetCategoriesFile returns the category catalog file path.
func (p *PathResolver) GetCategoriesFile() string {
	return p.categoriesFile
}

// GetExportFilePath returns the file path for an exported history document
// created at the given time.
// Example: exports/expense_history_20260829_153000.pdf
func (p *PathResolver) GetExportFilePath(at time.Time) string {
	filename := fmt.Sprintf("expense_history_%s.pdf", at.Format("20060102_150405"))
	return filepath.Join(p.exportsDir, filename)
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return p.EnsureDir(dir)
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
