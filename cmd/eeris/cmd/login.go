package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eeris-project/eeris-cli/pkg/eeris"
	"github.com/eeris-project/eeris-cli/pkg/session"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the EERIS backend",
	Long: `Sign in to the EERIS backend and store the session locally.

The issued token and role are persisted in the local state database, so
subsequent commands run authenticated until 'eeris logout'.

Example:
  eeris login --email alice@example.com --password secret`,
	Run: runLogin,
}

// logoutCmd represents the logout command.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	Run:   runLogout,
}

var (
	registerName     string
	registerEmail    string
	registerPassword string
	registerRoleID   int
)

// registerCmd represents the register command.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new EERIS account",
	Long: `Create a new EERIS account.

Role IDs: 1 = employee, 2 = supervisor, 3 = admin.

Example:
  eeris register --name Alice --email alice@example.com --password secret`,
	Run: runRegister,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerName, "name", "", "full name (required)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email (required)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (required)")
	registerCmd.Flags().IntVar(&registerRoleID, "role-id", 1, "role ID (1=employee, 2=supervisor, 3=admin)")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	resp, err := app.client.Login(commandContext(cmd), loginEmail, loginPassword)
	exitOnError(err, "login failed")

	role := session.ParseRole(resp.Role)
	err = app.sess.Establish(resp.Token, role)
	exitOnError(err, "failed to store session")

	slog.Info("Logged in", "role", string(role))
	fmt.Printf("Logged in as %s (%s)\n", loginEmail, role)
}

func runLogout(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	err = app.sess.Clear()
	exitOnError(err, "failed to clear session")

	fmt.Println("Logged out")
}

func runRegister(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	resp, err := app.client.Register(commandContext(cmd), eeris.RegisterRequest{
		Name:     registerName,
		Email:    registerEmail,
		Password: registerPassword,
		RoleID:   registerRoleID,
	})
	exitOnError(err, "registration failed")

	fmt.Println(resp.Message)
	fmt.Println("Run 'eeris login' to sign in.")
}
