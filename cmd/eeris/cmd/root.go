// Package cmd provides CLI commands for eeris.
package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eeris-project/eeris-cli/pkg/config"
	"github.com/eeris-project/eeris-cli/pkg/db"
	"github.com/eeris-project/eeris-cli/pkg/eeris"
	"github.com/eeris-project/eeris-cli/pkg/pathutil"
	"github.com/eeris-project/eeris-cli/pkg/session"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "eeris",
	Short: "Track and report employee expenses",
	Long: `eeris is a CLI client for the EERIS expense reporting backend.

It supports:
- Uploading receipt images for automatic extraction
- Submitting manual expense entries
- Reviewing, approving and rejecting receipts
- Exporting expense history to PDF with a category chart
- Managing users (admin)

Example:
  eeris login --email alice@example.com
  eeris upload receipt.jpg --submit
  eeris export`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(receiptsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(accountCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		if errors.Is(err, eeris.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "Your session is missing or expired. Run 'eeris login' to sign in.")
		}
		os.Exit(1)
	}
}

// app wires together the components every command needs: configuration,
// the local state database, the persisted session and the API client.
type app struct {
	cfg    *config.Config
	paths  *pathutil.PathResolver
	conn   *db.Connection
	sess   *session.Session
	client *eeris.Client
}

func newApp() (*app, error) {
	cfg, err := config.Load(getConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate([]string{"api", "baseUrl"}); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	paths := pathutil.New(pathutil.Config{
		DataRoot:       cfg.Storage.DataRoot,
		DatabasePath:   cfg.Storage.DBPath,
		ExportsDir:     cfg.Storage.ExportsDir,
		CategoriesFile: cfg.Storage.CategoriesFile,
	})

	dbPath := paths.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)
	if err := paths.EnsureParentDir(dbPath); err != nil {
		return nil, fmt.Errorf("failed to prepare data directory: %w", err)
	}
	conn, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.InitializeSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	sess, err := session.New(session.NewDBStore(conn))
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	client := eeris.NewClient(eeris.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, sess)

	return &app{cfg: cfg, paths: paths, conn: conn, sess: sess, client: client}, nil
}

func (a *app) Close() {
	if err := a.conn.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}

// requireAuth fails fast when no session is stored, before any request
// reaches the backend.
func (a *app) requireAuth() error {
	if !a.sess.Authenticated() {
		return fmt.Errorf("not logged in: %w", eeris.ErrUnauthorized)
	}
	return nil
}

// confirm asks the user to confirm a destructive action.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
