package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func newContractCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Manage contracts",
	}
	cmd.AddCommand(newContractCreateCmd(app), newContractUpdateCmd(app),
		newContractSignCmd(app), newContractGetCmd(app), newContractListCmd(app))
	return cmd
}

func newContractCreateCmd(app *App) *cobra.Command {
	var in ports.CreateContractInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a contract for a client (management only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, err := app.Contracts.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created contract %d for client %d\n", contract.ID, contract.ClientID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&in.ClientID, "client", 0, "client id")
	cmd.Flags().Float64Var(&in.TotalAmount, "total", 0, "total amount")
	cmd.Flags().Float64Var(&in.AmountDue, "due", 0, "amount still due")
	return cmd
}

func newContractUpdateCmd(app *App) *cobra.Command {
	var total, due float64

	cmd := &cobra.Command{
		Use:   "update <contract-id>",
		Short: "Adjust contract amounts in your scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var params ports.UpdateContractParams
			if cmd.Flags().Changed("total") {
				params.TotalAmount = &total
			}
			if cmd.Flags().Changed("due") {
				params.AmountDue = &due
			}

			contract, err := app.Contracts.Update(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated contract %d\n", contract.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&total, "total", 0, "total amount")
	cmd.Flags().Float64Var(&due, "due", 0, "amount still due")
	return cmd
}

func newContractSignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <contract-id>",
		Short: "Mark a contract as signed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			contract, err := app.Contracts.Sign(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "contract %d signed\n", contract.ID)
			return nil
		},
	}
}

func newContractGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <contract-id>",
		Short: "Show a contract in your scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			contract, err := app.Contracts.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printContracts(cmd, []*domain.Contract{contract})
			return nil
		},
	}
}

func newContractListCmd(app *App) *cobra.Command {
	var filter ports.ListContractsFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the contracts visible to your role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contracts, err := app.Contracts.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			printContracts(cmd, contracts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&filter.Unsigned, "unsigned", false, "only unsigned contracts")
	cmd.Flags().BoolVar(&filter.Unpaid, "unpaid", false, "only contracts with an outstanding amount")
	return cmd
}

func printContracts(cmd *cobra.Command, contracts []*domain.Contract) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tSALES CONTACT\tTOTAL\tDUE\tSIGNED")
	for _, c := range contracts {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%.2f\t%t\n",
			c.ID, c.ClientID, c.SalesContactID, c.TotalAmount, c.AmountDue, c.Signed)
	}
	_ = w.Flush()
}
