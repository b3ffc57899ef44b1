package configcmd

import (
	"errors"
	"fmt"
	"os"

	"or1on/cmd/or1on/cmdutil"
	"or1on/cmd/or1on/ui"
	"or1on/config"
	"or1on/kernel"

	"github.com/spf13/cobra"
)

// Cmd returns the parent "or1on config" command.
func Cmd(flags *cmdutil.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the kernel config bundle",
	}

	cmd.AddCommand(pathCmd(flags))
	cmd.AddCommand(showCmd(flags))
	cmd.AddCommand(initCmd(flags))
	return cmd
}

func resolvePath(flags *cmdutil.Flags) (string, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return "", err
	}
	return settings.ResolvePath(flags.ConfigPath), nil
}

func pathCmd(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := resolvePath(flags)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func showCmd(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved config bundle as YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := resolvePath(flags)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

func initCmd(flags *cmdutil.Flags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config bundle",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := resolvePath(flags)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}

			if err := config.Save(path, kernel.DefaultConfig()); err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("Config written to %s.", ui.Bold(path)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
