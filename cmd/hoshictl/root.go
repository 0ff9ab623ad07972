package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd(deps dependencies) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "hoshictl",
		Short:        "Hoshi session and media client",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: disabled, debug, info, warn, error")

	cmd.AddCommand(newLoginCmd(deps, opts))
	cmd.AddCommand(newLogoutCmd(deps, opts))
	cmd.AddCommand(newWhoamiCmd(deps, opts))
	cmd.AddCommand(newResolveCmd(deps, opts))
	cmd.AddCommand(newGuardCmd(deps, opts))

	return cmd
}
