package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	passwdCurrent string
	passwdNew     string
)

// accountCmd groups operations on the signed-in account.
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the signed-in account",
	Long: `Manage the signed-in account.

Example:
  eeris account passwd --current old --new updated
  eeris account delete`,
}

var accountPasswdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	Long: `Change the account password.

On success the stored session is cleared, so a new login with the new
password is required.`,
	Run: runAccountPasswd,
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the account and all its receipts",
	Run:   runAccountDelete,
}

func init() {
	accountPasswdCmd.Flags().StringVar(&passwdCurrent, "current", "", "current password (required)")
	accountPasswdCmd.Flags().StringVar(&passwdNew, "new", "", "new password (required)")
	accountPasswdCmd.MarkFlagRequired("current")
	accountPasswdCmd.MarkFlagRequired("new")

	accountCmd.AddCommand(accountPasswdCmd)
	accountCmd.AddCommand(accountDeleteCmd)
}

func runAccountPasswd(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot change password")

	resp, err := app.client.ChangePassword(commandContext(cmd), passwdCurrent, passwdNew)
	exitOnError(err, "failed to change password")

	// The old token is no longer valid.
	err = app.sess.Clear()
	exitOnError(err, "failed to clear session")

	fmt.Println(resp.Message)
	fmt.Println("Run 'eeris login' to sign in with the new password.")
}

func runAccountDelete(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(app.requireAuth(), "cannot delete account")

	if !confirm("Delete your account and all its receipts? This cannot be undone.") {
		fmt.Println("Aborted")
		return
	}

	slog.Info("Deleting account")
	resp, err := app.client.DeleteAccount(commandContext(cmd))
	exitOnError(err, "failed to delete account")

	err = app.sess.Clear()
	exitOnError(err, "failed to clear session")

	fmt.Println(resp.Message)
}
