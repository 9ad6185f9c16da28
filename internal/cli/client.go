package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}
	cmd.AddCommand(newClientCreateCmd(app), newClientUpdateCmd(app), newClientGetCmd(app), newClientListCmd(app))
	return cmd
}

func newClientCreateCmd(app *App) *cobra.Command {
	var in ports.CreateClientInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client owned by the calling sales user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Clients.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created client %d (%s), sales contact %d\n",
				client.ID, client.FullName(), client.SalesContactID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&in.CompanyName, "company", "", "company name")
	return cmd
}

func newClientUpdateCmd(app *App) *cobra.Command {
	var (
		firstName, lastName, email, phone, company string
		salesContact                               int64
	)

	cmd := &cobra.Command{
		Use:   "update <client-id>",
		Short: "Update a client in your scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var params ports.UpdateClientParams
			if cmd.Flags().Changed("first-name") {
				params.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				params.LastName = &lastName
			}
			if cmd.Flags().Changed("email") {
				params.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				params.Phone = &phone
			}
			if cmd.Flags().Changed("company") {
				params.CompanyName = &company
			}
			if cmd.Flags().Changed("sales-contact") {
				params.SalesContactID = &salesContact
			}

			client, err := app.Clients.Update(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated client %d\n", client.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().Int64Var(&salesContact, "sales-contact", 0, "owning sales user id (management only)")
	return cmd
}

func newClientGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <client-id>",
		Short: "Show a client in your scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := app.Clients.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printClients(cmd, []*domain.Client{client})
			return nil
		},
	}
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the clients visible to your role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(cmd.Context())
			if err != nil {
				return err
			}
			printClients(cmd, clients)
			return nil
		},
	}
}

func printClients(cmd *cobra.Command, clients []*domain.Client) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOMPANY\tSALES CONTACT")
	for _, c := range clients {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", c.ID, c.FullName(), c.Email, c.CompanyName, c.SalesContactID)
	}
	_ = w.Flush()
}
