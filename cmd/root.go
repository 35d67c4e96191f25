package cmd

import (
	"fmt"

	"github.com/bnema/graph-presence-cli/internal/adapters/render/console"
	"github.com/bnema/graph-presence-cli/internal/config"
	"github.com/spf13/cobra"
)

const annotationSkipWire = "gp/skip-wire"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp()
	var showLogs bool

	rootCmd := &cobra.Command{
		Use:           "gp",
		Short:         "Graph presence CLI (gp): acquire app tokens and read or set Teams presence",
		Long:          "gp is a diagnostic tool for the Microsoft Graph presence API. It acquires app-only tokens with the client-credentials grant, reads and sets a user's presence, and shows every call in a redacted API log. Run \"gp serve\" to expose the same operations over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationSkipWire] != "" {
				return nil
			}
			return app.wire(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !showLogs || app.controller == nil {
				return nil
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), console.RenderLogs(app.controller.Logs(), console.LogOptions{Detail: true}))
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("server", "", "URL of a running \"gp serve\" (default: run the endpoints in-process)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&showLogs, "logs", false, "Print the API log after the command")
	_ = app.viper.BindPFlag(config.KeyServerURL, flags.Lookup("server"))
	_ = app.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newConsoleCmd(app),
		newCredsCmd(app),
		newTokenCmd(app),
		newWhoAmICmd(app),
		newPresenceCmd(app),
		newPreferredCmd(app),
		newOptionsCmd(),
	)

	return rootCmd
}
