package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/config"
)

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "config:init [path]",
	Short: "Write a commented default config file",
	Long: `Write the default configuration, with comments for every key.

The file goes to .registrar/config.yaml unless a path is given. An existing
file is left alone unless --force is set.

Examples:
  registrar config:init
  registrar config:init ~/.config/registrar/config.yaml
  registrar config:init --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultConfigPath
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.WriteDefaultConfig(fs, path, configInitForce); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
	return nil
}
