package handoffcmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"or1on/cmd/or1on/cmdutil"
	"or1on/cmd/or1on/ui"

	"github.com/spf13/cobra"
)

// Cmd returns the parent "or1on handoff" command. Each subcommand prints the
// record a collaborator would act on; none of them contacts a gateway.
func Cmd(flags *cmdutil.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handoff",
		Short: "Show records handed to external collaborators",
	}

	cmd.AddCommand(mirrorCmd(flags))
	cmd.AddCommand(genesisCmd(flags))
	cmd.AddCommand(mobileCmd(flags))
	return cmd
}

func mirrorCmd(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "mirror",
		Short: "Hosting mirror configuration",
		Args:  cobra.NoArgs,
		RunE: cmdutil.WithSession(flags, func(_ context.Context, s *cmdutil.Session, _ []string) error {
			m := s.Kernel.BuildReplitMirror()
			fmt.Print(ui.KeyValues("  ",
				ui.KV("Origin", m.Origin),
				ui.KV("Target", m.Target),
				ui.KV("Hash Anchor", m.HashAnchor),
				ui.KV("Recovery", ui.Bool(m.RecoveryMode)),
			))
			return nil
		}),
	}
}

func genesisCmd(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "genesis",
		Short: "Genesis publication record",
		Args:  cobra.NoArgs,
		RunE: cmdutil.WithSession(flags, func(_ context.Context, s *cmdutil.Session, _ []string) error {
			g := s.Kernel.PublishGenesis()
			fmt.Print(ui.KeyValues("  ",
				ui.KV("Identity", ui.Bold(g.Identity)),
				ui.KV("Owner", g.Owner),
				ui.KV("Genesis", g.GenesisDate),
				ui.KV("Hash Anchor", g.HashAnchor),
				ui.KV("GitHub", gatewayStatus(g.GitHub)),
				ui.KV("IPFS", gatewayStatus(g.IPFS)),
			))
			return nil
		}),
	}
}

func mobileCmd(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "mobile",
		Short: "Mobile deployment bundle",
		Args:  cobra.NoArgs,
		RunE: cmdutil.WithSession(flags, func(_ context.Context, s *cmdutil.Session, _ []string) error {
			m := s.Kernel.DeployMobileChain()
			fmt.Print(ui.KeyValues("  ",
				ui.KV("Identity", ui.Bold(m.Identity)),
				ui.KV("Hash Anchor", m.HashAnchor),
				ui.KV("Fallback", strings.Join(m.FallbackBehavior, " → ")),
			))

			names := make([]string, 0, len(m.Gateways))
			for name := range m.Gateways {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, m.Gateways[name]})
			}
			if len(rows) > 0 {
				fmt.Println(ui.Table([]string{"GATEWAY", "STATUS"}, rows))
			}
			return nil
		}),
	}
}

func gatewayStatus(s string) string {
	if s == "" {
		return ui.Muted("unset")
	}
	return s
}
