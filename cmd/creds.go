package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/graph-presence-cli/internal/adapters/render/console"
	"github.com/spf13/cobra"
)

func newCredsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creds",
		Short: "Manage the stored tenant, app and user fields",
	}

	cmd.AddCommand(
		newCredsSetCmd(app),
		newCredsShowCmd(app),
		newCredsClearCmd(app),
	)

	return cmd
}

func newCredsSetCmd(app *app) *cobra.Command {
	var tenantID, appID, appSecret, userObjectID string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store credential fields; an empty value removes the field",
		Long:  "Store credential fields. Tenant ID, app ID and user object ID persist across sessions; the app secret is kept for the current login session only. Passing an empty value removes the field.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			setters := []struct {
				flag  string
				value string
				set   func(string) error
			}{
				{"tenant-id", tenantID, func(v string) error { return app.controller.SetTenantID(ctx, v) }},
				{"app-id", appID, func(v string) error { return app.controller.SetAppID(ctx, v) }},
				{"app-secret", appSecret, func(v string) error { return app.controller.SetAppSecret(ctx, v) }},
				{"user-object-id", userObjectID, func(v string) error { return app.controller.SetUserObjectID(ctx, v) }},
			}

			changed := 0
			for _, s := range setters {
				if !flags.Changed(s.flag) {
					continue
				}
				if err := s.set(s.value); err != nil {
					return fmt.Errorf("store %s: %w", s.flag, err)
				}
				changed++
			}
			if changed == 0 {
				return errors.New("nothing to set: pass at least one of --tenant-id, --app-id, --app-secret, --user-object-id")
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored %d field(s)\n", changed)
			return err
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant-id", "", "Directory (tenant) ID")
	cmd.Flags().StringVar(&appID, "app-id", "", "Application (client) ID")
	cmd.Flags().StringVar(&appSecret, "app-secret", "", "Client secret")
	cmd.Flags().StringVar(&userObjectID, "user-object-id", "", "Object ID of the user whose presence is read or set")

	return cmd
}

func newCredsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show stored fields with the secret masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.controller.Snapshot()
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "tenant id:      %s\n", orDash(state.TenantID))
			_, _ = fmt.Fprintf(out, "app id:         %s\n", orDash(state.AppID))
			_, _ = fmt.Fprintf(out, "app secret:     %s\n", console.MaskSecret(state.AppSecret))
			_, err := fmt.Fprintf(out, "user object id: %s\n", orDash(state.UserObjectID))
			return err
		},
	}
}

func newCredsClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every stored field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.controller.ClearStoredData(cmd.Context())
		},
	}
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
