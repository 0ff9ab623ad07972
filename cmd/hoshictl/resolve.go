package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
)

var errInvalidExpiry = errors.New("expiry must be a whole number of seconds")

type resolveOptions struct {
	expiry   time.Duration
	fallback string
}

func newResolveCmd(deps dependencies, opts *rootOptions) *cobra.Command {
	resolve := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve path [path...]",
		Short: "Print signed URLs for media paths",
		Long: `Print a signed URL per media path, one per line in the order given.
A single path that cannot be resolved prints the fallback, with several paths
an unresolved one is printed as given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if resolve.expiry < 0 || resolve.expiry%time.Second != 0 {
				return fmt.Errorf("%w: %s", errInvalidExpiry, resolve.expiry)
			}

			a, err := deps.newApp(opts, func(cfg *config.Config) {
				if resolve.expiry > 0 {
					cfg.Media.DefaultExpiry = int(resolve.expiry / time.Second)
				}
			})
			if err != nil {
				return err
			}

			resolver := a.media.ResolverService.MustLoad()
			if len(args) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), resolver.ResolveSecureURL(cmd.Context(), args[0], resolve.fallback))
				return nil
			}

			for _, signedURL := range resolver.ResolveMany(cmd.Context(), args) {
				fmt.Fprintln(cmd.OutOrStdout(), signedURL)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&resolve.expiry, "expiry", 0, "signed URL lifetime, the configured default when zero")
	cmd.Flags().StringVar(&resolve.fallback, "fallback", "", "URL printed when a single path cannot be resolved")

	return cmd
}
