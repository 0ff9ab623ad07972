package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
)

var errNotSignedIn = errors.New("not signed in")

func newLoginCmd(deps dependencies, opts *rootOptions) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the session token issued by the API gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := deps.newApp(opts)
			if err != nil {
				return err
			}

			sessionService := a.session.SessionService.MustLoad()
			if err = sessionService.SignIn(cmd.Context(), domain.Token(token)); err != nil {
				return err
			}

			claims, err := sessionService.Claims(cmd.Context())
			if err != nil || claims.Username == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "signed in")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", claims.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "session token")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newLogoutCmd(deps dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := deps.newApp(opts)
			if err != nil {
				return err
			}

			if err = a.session.SessionService.MustLoad().SignOut(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(deps dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the claims of the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := deps.newApp(opts)
			if err != nil {
				return err
			}

			claims, err := a.session.SessionService.MustLoad().Claims(cmd.Context())
			if errors.Is(err, store.ErrTokenNotFound) {
				return errNotSignedIn
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "username: %s\n", valueOrDash(claims.Username))
			fmt.Fprintf(out, "user id:  %s\n", valueOrDash(claims.UserID))
			fmt.Fprintf(out, "role:     %s\n", valueOrDash(claims.Role))
			if claims.ExpiresAt != nil {
				fmt.Fprintf(out, "expires:  %s\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
			}
			return nil
		},
	}
}

type guardOptions struct {
	requiresAuth  bool
	requiresAdmin bool
	guestsOnly    bool
}

func newGuardCmd(deps dependencies, opts *rootOptions) *cobra.Command {
	guard := &guardOptions{}

	cmd := &cobra.Command{
		Use:   "guard [path]",
		Short: "Decide whether the stored session may navigate to a destination",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := deps.newApp(opts)
			if err != nil {
				return err
			}

			intent := domain.NavigationIntent{
				Destination: domain.Destination{
					RequiresAuth:  guard.requiresAuth,
					RequiresAdmin: guard.requiresAdmin,
					GuestsOnly:    guard.guestsOnly,
				},
			}
			if len(args) > 0 {
				intent.Path = args[0]
			}

			decision := a.session.SessionService.MustLoad().Decide(cmd.Context(), intent)
			if decision.Allowed() {
				fmt.Fprintln(cmd.OutOrStdout(), "allow")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "redirect %s\n", decision.RedirectTo)
			return nil
		},
	}

	cmd.Flags().BoolVar(&guard.requiresAuth, "requires-auth", false, "destination requires a session")
	cmd.Flags().BoolVar(&guard.requiresAdmin, "requires-admin", false, "destination requires the admin role")
	cmd.Flags().BoolVar(&guard.guestsOnly, "guests-only", false, "destination is only for signed out users")

	return cmd
}

func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
