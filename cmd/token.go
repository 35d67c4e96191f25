package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/graph-presence-cli/internal/adapters/graph"
	"github.com/spf13/cobra"
)

func newTokenCmd(app *app) *cobra.Command {
	var showToken bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Acquire an app-only token and show its claims",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runAction(cmd, "Acquiring app token...", app.controller.EnsureToken); err != nil {
				return err
			}

			token := app.controller.Snapshot().Token
			out := cmd.OutOrStdout()
			if showToken {
				_, _ = fmt.Fprintln(out, token)
			}

			claims, err := graph.InspectToken(token)
			if err != nil {
				_, err = fmt.Fprintf(out, "claims: unavailable (%v)\n", err)
				return err
			}

			_, _ = fmt.Fprintf(out, "appid: %s\n", orDash(claims.AppID))
			if claims.AppName != "" {
				_, _ = fmt.Fprintf(out, "app:   %s\n", claims.AppName)
			}
			_, _ = fmt.Fprintf(out, "tid:   %s\n", orDash(claims.TenantID))
			_, _ = fmt.Fprintf(out, "roles: %s\n", orDash(strings.Join(claims.Roles, ", ")))
			_, err = fmt.Fprintf(out, "exp:   %s\n", formatExpiry(claims.Expiry(), time.Now()))
			return err
		},
	}

	cmd.Flags().BoolVar(&showToken, "show-token", false, "Print the raw access token")

	return cmd
}

func formatExpiry(exp, now time.Time) string {
	if exp.IsZero() {
		return "-"
	}
	stamp := exp.Local().Format(time.RFC3339)
	if !exp.After(now) {
		return stamp + " (expired)"
	}
	return fmt.Sprintf("%s (in %s)", stamp, exp.Sub(now).Round(time.Minute))
}
