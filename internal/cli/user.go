package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage collaborator accounts (management only)",
	}
	cmd.AddCommand(newUserCreateCmd(app), newUserUpdateRoleCmd(app), newUserDeleteCmd(app))
	return cmd
}

func newUserCreateCmd(app *App) *cobra.Command {
	var in ports.CreateUserInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a collaborator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Password == "" {
				var err error
				in.Password, err = promptPassword()
				if err != nil {
					return err
				}
			}

			user, err := app.Users.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s, %s)\n", user.ID, user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Username, "username", "", "unique username")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&in.Role, "role", "", "department: management, sales or support")
	return cmd
}

func newUserUpdateRoleCmd(app *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "update-role <user-id>",
		Short: "Move a collaborator to another department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			parsed, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			if err := app.Users.UpdateRole(cmd.Context(), id, parsed); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %d is now %s\n", id, parsed)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "new department")
	return cmd
}

func newUserDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Remove a collaborator account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Users.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted user %d\n", id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
