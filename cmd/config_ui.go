package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zjrosen/registrar/internal/config"
)

var configUICmd = &cobra.Command{
	Use:   "config:ui",
	Short: "Change terminal settings in the config file",
	Long: `Update the ui section of the active config file.

Only the flags given are changed. Comments and every other section of the
file are kept as they are. Without a config file, .registrar/config.yaml is
created.

Examples:
  registrar config:ui --pause=false
  registrar config:ui --clear-screen=false --color never`,
	Args: cobra.NoArgs,
	RunE: runConfigUI,
}

func init() {
	configUICmd.Flags().Bool("clear-screen", true, "clear the screen between actions")
	configUICmd.Flags().Bool("pause", true, "wait for Enter after each action")
	configUICmd.Flags().String("color", "auto", "color output: auto, always or never")
	rootCmd.AddCommand(configUICmd)
}

func runConfigUI(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}

	ui, err := applyUIFlags(cmd.Flags(), cfg.UI)
	if err != nil {
		return err
	}

	updated := cfg
	updated.UI = ui
	if err := config.Validate(updated); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path := viper.ConfigFileUsed()
	if path == "" {
		path = config.DefaultConfigPath
	}
	if err := config.SaveUI(fs, path, ui); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: clear_screen=%t pause=%t color=%s\n",
		path, ui.ClearScreen, ui.Pause, ui.Color)
	return nil
}

// applyUIFlags overlays the flags that were set on the current settings.
func applyUIFlags(flags *pflag.FlagSet, ui config.UIConfig) (config.UIConfig, error) {
	var err error
	if flags.Changed("clear-screen") {
		if ui.ClearScreen, err = flags.GetBool("clear-screen"); err != nil {
			return ui, err
		}
	}
	if flags.Changed("pause") {
		if ui.Pause, err = flags.GetBool("pause"); err != nil {
			return ui, err
		}
	}
	if flags.Changed("color") {
		if ui.Color, err = flags.GetString("color"); err != nil {
			return ui, err
		}
	}
	return ui, nil
}
