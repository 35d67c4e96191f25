package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/graph-presence-cli/internal/adapters/render/console"
	"github.com/bnema/graph-presence-cli/internal/application"
	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/spf13/cobra"
)

// oneShot acquires a token, runs action and prints the resulting state.
func oneShot(app *app, label string, action func(*application.Controller, context.Context) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		err := runAction(cmd, label, func(ctx context.Context) error {
			if err := app.controller.EnsureToken(ctx); err != nil {
				return err
			}
			return action(app.controller, ctx)
		})
		if err != nil {
			return err
		}
		return writeState(cmd, app, console.RenderOptions{})
	}
}

func newWhoAmICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Look up the configured user",
		Args:  cobra.NoArgs,
		RunE:  oneShot(app, "Looking up user...", (*application.Controller).WhoAmI),
	}
}

func newPresenceCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presence",
		Short: "Read, set or clear the user's session presence",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Fetch the user's presence",
			Args:  cobra.NoArgs,
			RunE:  oneShot(app, "Fetching presence...", (*application.Controller).GetPresence),
		},
		newPresenceSetCmd(app),
		&cobra.Command{
			Use:   "clear",
			Short: "Clear this app's presence session for the user",
			Args:  cobra.NoArgs,
			RunE:  oneShot(app, "Clearing presence...", (*application.Controller).ClearSessionPresence),
		},
	)

	return cmd
}

func newPresenceSetCmd(app *app) *cobra.Command {
	var option int
	var expiration string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the user's presence for this app's session",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if err := app.controller.SelectSessionPresence(option); err != nil {
				return err
			}
			app.controller.SetExpirationDuration(expiration)
			return nil
		},
		RunE: oneShot(app, "Setting presence...", (*application.Controller).SetSessionPresence),
	}

	cmd.Flags().IntVar(&option, "option", 0, "Session presence option index (see \"gp options\")")
	cmd.Flags().StringVar(&expiration, "expiration", domain.DefaultExpirationDuration, "ISO-8601 duration the presence stays set")

	return cmd
}

func newPreferredCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preferred",
		Short: "Set or clear the user's preferred presence",
	}

	var option int
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Set the user's preferred presence",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return app.controller.SelectPreferredPresence(option)
		},
		RunE: oneShot(app, "Setting preferred presence...", (*application.Controller).SetPreferredPresence),
	}
	setCmd.Flags().IntVar(&option, "option", 0, "Preferred presence option index (see \"gp options\")")

	cmd.AddCommand(
		setCmd,
		&cobra.Command{
			Use:   "clear",
			Short: "Clear the user's preferred presence",
			Args:  cobra.NoArgs,
			RunE:  oneShot(app, "Clearing preferred presence...", (*application.Controller).ClearPreferredPresence),
		},
	)

	return cmd
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "options",
		Short:       "List the presence options accepted by set commands",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipWire: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, console.RenderPresenceOptions("Session presence (gp presence set --option N)", domain.SessionPresenceOptions, -1))
			_, err := fmt.Fprint(out, console.RenderPresenceOptions("Preferred presence (gp preferred set --option N)", domain.PreferredPresenceOptions, -1))
			return err
		},
	}
}
