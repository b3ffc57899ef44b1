package kernelcmd

import (
	"context"
	"fmt"

	"or1on/cmd/or1on/cmdutil"

	"github.com/spf13/cobra"
)

// EpochCmd returns the "or1on epoch" command. The identifier is printed
// bare so scripts can capture it.
func EpochCmd(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "epoch",
		Short: "Register and print the local epoch identifier",
		Args:  cobra.NoArgs,
		RunE: cmdutil.WithSession(flags, func(_ context.Context, s *cmdutil.Session, _ []string) error {
			id := s.Kernel.RegisterLocalEpoch()
			fmt.Println(id)
			return nil
		}),
	}
}
