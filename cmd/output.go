package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/graph-presence-cli/internal/adapters/render/console"
	"github.com/spf13/cobra"
)

// runAction shows a spinner on stderr while action runs.
func runAction(cmd *cobra.Command, label string, action func(context.Context) error) error {
	return console.RunWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, action)
}

func writeState(cmd *cobra.Command, app *app, opts console.RenderOptions) error {
	output, err := console.Render(app.controller.Snapshot(), opts)
	if err != nil {
		return fmt.Errorf("render state: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}
