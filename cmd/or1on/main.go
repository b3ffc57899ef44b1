package main

import (
	"fmt"
	"os"

	"or1on/cmd/or1on/cmdutil"
	"or1on/cmd/or1on/configcmd"
	"or1on/cmd/or1on/handoffcmd"
	"or1on/cmd/or1on/journalcmd"
	"or1on/cmd/or1on/kernelcmd"
	"or1on/cmd/or1on/ui"
	"or1on/config"
	"or1on/internal/logging"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var flags cmdutil.Flags

	if err := logging.Configure(logging.LevelWarn, logging.FormatText); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "or1on",
		Short:         "Integrity-gated recovery kernel",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			level := settings.LogLevel
			if flags.Debug {
				level = logging.LevelDebug
			}
			if err := logging.Configure(level, settings.LogFormat); err != nil {
				return err
			}

			ui.ConfigureColor(flags.NoColor)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&flags.Trace, "trace", false, "Print finished spans on exit")
	root.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "Kernel config file (default $XDG_CONFIG_HOME/or1on/kernel.yaml)")
	root.PersistentFlags().StringVar(&flags.Journal, "journal", "", "Audit journal database (default $OR1ON_AUDIT_DB)")

	root.AddCommand(kernelcmd.BootCmd(&flags))
	root.AddCommand(kernelcmd.VerifyCmd(&flags))
	root.AddCommand(kernelcmd.StatusCmd(&flags))
	root.AddCommand(kernelcmd.AuditCmd(&flags))
	root.AddCommand(kernelcmd.EpochCmd(&flags))
	root.AddCommand(handoffcmd.Cmd(&flags))
	root.AddCommand(configcmd.Cmd(&flags))
	root.AddCommand(journalcmd.Cmd(&flags))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}
