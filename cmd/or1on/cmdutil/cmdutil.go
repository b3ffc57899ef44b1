// Package cmdutil holds helpers shared by the or1on subcommands.
package cmdutil

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

// RunFunc is a command body that works against an open session.
type RunFunc func(ctx context.Context, s *Session, args []string) error

// WithSession opens a session for the command, runs fn and closes the
// session. A close failure is logged unless fn already failed.
func WithSession(flags *Flags, fn RunFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		s, err := Open(ctx, flags)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := s.Close(context.WithoutCancel(ctx)); closeErr != nil {
				if err == nil {
					err = closeErr
					return
				}
				slog.Warn("Failed to close session.", "err", closeErr)
			}
		}()

		return fn(ctx, s, args)
	}
}
