package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teranos/promptforge/config"
	"github.com/teranos/promptforge/display"
	"github.com/teranos/promptforge/errors"
)

// ConfigCmd groups configuration management subcommands
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage promptforge configuration",
	Long: `Manage promptforge configuration.

Configuration sources, lowest to highest precedence: built-in defaults,
~/.promptforge/config.toml, a project-local .promptforge.toml, and
PROMPTFORGE_* environment variables.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}

		out, err := display.MarshalJSON(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to format configuration")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file with the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")

		written, err := config.Init(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
		return nil
	},
}

func init() {
	configInitCmd.Flags().String("path", "", "Config file location (default ~/.promptforge/config.toml)")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}
