package kernelcmd

import (
	"context"
	"errors"

	"or1on/cmd/or1on/cmdutil"
	"or1on/kernel"

	"github.com/spf13/cobra"
)

var errHashRequired = errors.New("--hash or OR1ON_HASH is required")

// VerifyCmd returns the "or1on verify" command. It exits non-zero when the
// hash does not match the anchor.
func VerifyCmd(flags *cmdutil.Flags) *cobra.Command {
	var hash string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a hash against the kernel's integrity anchor",
		Args:  cobra.NoArgs,
		RunE: cmdutil.WithSession(flags, func(_ context.Context, s *cmdutil.Session, _ []string) error {
			expected := s.Hash(hash)
			if expected == "" {
				return errHashRequired
			}
			if !s.Kernel.Verify(expected) {
				return kernel.ErrVerificationMismatch
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&hash, "hash", "", "Expected integrity anchor")
	return cmd
}
