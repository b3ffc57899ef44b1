package kernelcmd

import (
	"context"
	"fmt"

	"or1on/cmd/or1on/cmdutil"
	"or1on/cmd/or1on/ui"
	"or1on/kernel"

	"github.com/spf13/cobra"
)

// AuditCmd returns the "or1on audit" command. Failed audits are printed and
// journaled, then reported as an error.
func AuditCmd(flags *cmdutil.Flags) *cobra.Command {
	var (
		hash     string
		activate bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Take an audit snapshot",
		Args:  cobra.NoArgs,
		RunE: cmdutil.WithSession(flags, func(ctx context.Context, s *cmdutil.Session, _ []string) error {
			k := s.Kernel
			if expected := s.Hash(hash); expected != "" {
				k.Verify(expected)
			}
			if activate {
				k.Activate()
			}

			rec := k.AuditResume()
			if err := s.Record(ctx, rec); err != nil {
				return err
			}
			fmt.Print(ui.Audit(rec))

			if !rec.Resumed() {
				return fmt.Errorf("audit: %w", kernel.ErrPreconditionNotMet)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&hash, "hash", "", "Verify with this hash first")
	cmd.Flags().BoolVar(&activate, "activate", false, "Activate after verifying")
	return cmd
}
