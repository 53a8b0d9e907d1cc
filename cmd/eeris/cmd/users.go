package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eeris-project/eeris-cli/pkg/session"
)

// usersCmd groups account administration operations.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts (admin)",
	Long: `Manage user accounts. Requires an admin role.

Example:
  eeris users list
  eeris users set-role 3 supervisor
  eeris users delete 3`,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user accounts",
	Run:   runUsersList,
}

var usersSetRoleCmd = &cobra.Command{
	Use:   "set-role ID ROLE",
	Short: "Change a user's role",
	Args:  cobra.ExactArgs(2),
	Run:   runUsersSetRole,
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	Run:   runUsersDelete,
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersSetRoleCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}

func requireAdmin(app *app) error {
	if err := app.requireAuth(); err != nil {
		return err
	}
	if !app.sess.CanAdminister() {
		return fmt.Errorf("requires an admin role")
	}
	return nil
}

func parseUserID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID %q", arg)
	}
	return id, nil
}

func runUsersList(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(requireAdmin(app), "cannot list users")

	users, err := app.client.AllUsers(commandContext(cmd))
	exitOnError(err, "failed to fetch users")

	fmt.Printf("%-6s %-20s %-28s %s\n", "ID", "Name", "Email", "Role")
	for _, u := range users {
		fmt.Printf("%-6d %-20s %-28s %s\n", u.ID, u.Name, u.Email, u.Role)
	}
}

func runUsersSetRole(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(requireAdmin(app), "cannot change role")

	id, err := parseUserID(args[0])
	exitOnError(err, "cannot change role")

	role := session.ParseRole(args[1])
	if role == session.RoleNone {
		exitOnError(fmt.Errorf("unknown role %q (employee, supervisor or admin)", args[1]), "cannot change role")
	}

	slog.Info("Updating user role", "id", id, "role", string(role))
	err = app.client.UpdateUserRole(commandContext(cmd), id, string(role))
	exitOnError(err, "failed to update role")

	fmt.Printf("User %d is now %s\n", id, role)
}

func runUsersDelete(cmd *cobra.Command, args []string) {
	app, err := newApp()
	exitOnError(err, "failed to initialize")
	defer app.Close()

	exitOnError(requireAdmin(app), "cannot delete user")

	id, err := parseUserID(args[0])
	exitOnError(err, "cannot delete user")

	if !confirm(fmt.Sprintf("Delete user %d and all their receipts?", id)) {
		fmt.Println("Aborted")
		return
	}

	err = app.client.DeleteUser(commandContext(cmd), id)
	exitOnError(err, "failed to delete user")

	fmt.Printf("User %d deleted\n", id)
}
