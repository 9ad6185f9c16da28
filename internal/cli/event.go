package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage events",
	}
	cmd.AddCommand(newEventCreateCmd(app), newEventAssignCmd(app),
		newEventUpdateCmd(app), newEventGetCmd(app), newEventListCmd(app))
	return cmd
}

func newEventCreateCmd(app *App) *cobra.Command {
	var (
		in             ports.CreateEventInput
		startsAt, ends string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule an event under one of your signed contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.StartsAt, err = parseTime(startsAt); err != nil {
				return err
			}
			if in.EndsAt, err = parseTime(ends); err != nil {
				return err
			}

			event, err := app.Events.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created event %d under contract %d\n", event.ID, event.ContractID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&in.ContractID, "contract", 0, "contract id")
	cmd.Flags().StringVar(&in.Name, "name", "", "event name")
	cmd.Flags().StringVar(&in.Location, "location", "", "event location")
	cmd.Flags().StringVar(&startsAt, "starts", "", "start time (RFC 3339)")
	cmd.Flags().StringVar(&ends, "ends", "", "end time (RFC 3339)")
	cmd.Flags().IntVar(&in.Attendees, "attendees", 0, "expected attendees")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "notes")
	return cmd
}

func newEventAssignCmd(app *App) *cobra.Command {
	var supportID int64

	cmd := &cobra.Command{
		Use:   "assign <event-id>",
		Short: "Assign a support user to an event (management only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			event, err := app.Events.AssignSupport(cmd.Context(), id, supportID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "event %d assigned to support user %d\n", event.ID, supportID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&supportID, "support", 0, "support user id")
	return cmd
}

func newEventUpdateCmd(app *App) *cobra.Command {
	var (
		name, location, notes, startsAt, ends string
		attendees                             int
	)

	cmd := &cobra.Command{
		Use:   "update <event-id>",
		Short: "Update an event in your scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var params ports.UpdateEventParams
			if cmd.Flags().Changed("name") {
				params.Name = &name
			}
			if cmd.Flags().Changed("location") {
				params.Location = &location
			}
			if cmd.Flags().Changed("notes") {
				params.Notes = &notes
			}
			if cmd.Flags().Changed("attendees") {
				params.Attendees = &attendees
			}
			if cmd.Flags().Changed("starts") {
				t, err := parseTime(startsAt)
				if err != nil {
					return err
				}
				params.StartsAt = &t
			}
			if cmd.Flags().Changed("ends") {
				t, err := parseTime(ends)
				if err != nil {
					return err
				}
				params.EndsAt = &t
			}

			event, err := app.Events.Update(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated event %d\n", event.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "event name")
	cmd.Flags().StringVar(&location, "location", "", "event location")
	cmd.Flags().StringVar(&startsAt, "starts", "", "start time (RFC 3339)")
	cmd.Flags().StringVar(&ends, "ends", "", "end time (RFC 3339)")
	cmd.Flags().IntVar(&attendees, "attendees", 0, "expected attendees")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	return cmd
}

func newEventGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <event-id>",
		Short: "Show an event in your scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			event, err := app.Events.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printEvents(cmd, []*domain.Event{event})
			return nil
		},
	}
}

func newEventListCmd(app *App) *cobra.Command {
	var filter ports.ListEventsFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the events visible to your role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Events.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			printEvents(cmd, events)
			return nil
		},
	}

	cmd.Flags().BoolVar(&filter.Unassigned, "unassigned", false, "only events with no support contact")
	return cmd
}

func printEvents(cmd *cobra.Command, events []*domain.Event) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCONTRACT\tNAME\tSTARTS\tSUPPORT")
	for _, e := range events {
		support := "-"
		if e.SupportContactID != nil {
			support = fmt.Sprintf("%d", *e.SupportContactID)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			e.ID, e.ContractID, e.Name, e.StartsAt.Format(time.RFC3339), support)
	}
	_ = w.Flush()
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected RFC 3339 (e.g. 2026-09-01T18:00:00Z)", s)
	}
	return t, nil
}
