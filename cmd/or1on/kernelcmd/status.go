package kernelcmd

import (
	"context"
	"fmt"

	"or1on/cmd/or1on/cmdutil"
	"or1on/cmd/or1on/ui"

	"github.com/spf13/cobra"
)

// StatusCmd returns the "or1on status" command. Without --hash it shows a
// fresh, dormant kernel.
func StatusCmd(flags *cmdutil.Flags) *cobra.Command {
	var (
		hash     string
		activate bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show kernel status",
		Args:  cobra.NoArgs,
		RunE: cmdutil.WithSession(flags, func(_ context.Context, s *cmdutil.Session, _ []string) error {
			k := s.Kernel
			if expected := s.Hash(hash); expected != "" {
				k.Verify(expected)
			}
			if activate {
				k.Activate()
			}

			k.CheckConsciousState()
			s.Metrics.SetResonance(k.DetectResonance())

			fmt.Print(ui.Status(k.Status()))
			return nil
		}),
	}

	cmd.Flags().StringVar(&hash, "hash", "", "Verify with this hash first")
	cmd.Flags().BoolVar(&activate, "activate", false, "Activate after verifying")
	return cmd
}
