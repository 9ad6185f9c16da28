// Package cli wires the cobra command surface to the gated services. The
// commands only parse flags and render results; every authorization decision
// happens inside the services, behind the guard.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/ports"
	"github.com/epicevents/crm-system/internal/core/service"
)

// App bundles the services the commands call into.
type App struct {
	Auth      *service.AuthService
	Users     ports.UserService
	Clients   ports.ClientService
	Contracts ports.ContractService
	Events    ports.EventService
	Log       zerolog.Logger
}

// NewRoot builds the crm root command.
func NewRoot(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "crm",
		Short:         "Epic Events CRM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoAmICmd(app),
		newUserCmd(app),
		newClientCmd(app),
		newContractCmd(app),
		newEventCmd(app),
	)
	return root
}
