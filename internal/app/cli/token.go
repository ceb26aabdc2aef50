package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"menyqr-app/internal/infra/identity"
)

// newTokenCmd prints a session token, handy for curl against a local server.
func newTokenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token <user-id>",
		Short: "Issue a session token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := identity.NewTokens(a.cfg.Session.JWTSecret, a.cfg.Session.TTL).Issue(args[0])
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
}
