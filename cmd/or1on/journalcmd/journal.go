package journalcmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"or1on/cmd/or1on/cmdutil"
	"or1on/cmd/or1on/ui"

	"github.com/spf13/cobra"
)

// Cmd returns the "or1on journal" command.
func Cmd(flags *cmdutil.Flags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List journaled audit snapshots",
		Args:  cobra.NoArgs,
		RunE: cmdutil.WithSession(flags, func(ctx context.Context, s *cmdutil.Session, _ []string) error {
			j, err := s.Journal()
			if err != nil {
				return err
			}
			if j == nil {
				return errors.New("no journal configured (use --journal or OR1ON_AUDIT_DB)")
			}

			entries, err := j.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(ui.InfoMsg("Journal is empty."))
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				r := e.Record
				resonance := ""
				if r.Resumed() {
					resonance = strconv.FormatFloat(r.Resonance, 'f', 2, 64)
				}
				rows = append(rows, []string{
					strconv.FormatInt(e.ID, 10),
					r.Timestamp.Format(time.RFC3339),
					r.Status,
					r.Identity,
					r.EpochID,
					resonance,
				})
			}
			fmt.Println(ui.Table([]string{"ID", "TIME", "STATUS", "IDENTITY", "EPOCH", "RESONANCE"}, rows))
			return nil
		}),
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 for all)")
	return cmd
}
