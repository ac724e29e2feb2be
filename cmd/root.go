package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/registrar/internal/config"
	"github.com/zjrosen/registrar/internal/domain/registry"
	"github.com/zjrosen/registrar/internal/log"
	"github.com/zjrosen/registrar/internal/presentation"
	"github.com/zjrosen/registrar/internal/terminal"
	"github.com/zjrosen/registrar/internal/ui/styles"
)

var (
	version   = "dev"
	cfgFile   string
	cfg       config.Config
	configErr error

	// fs backs the config subcommands.
	fs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "Register professors, subjects and students",
	Long: `An interactive academic registry.

Register professors, the subjects they teach and the students taking them,
then list everything or query students by subject and by professor.

Input is read line by line, so a session can be scripted:
  printf '1\nAda\n5\n0\n' | registrar --output json`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .registrar/config.yaml, then ~/.config/registrar/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "debug log path (default: debug.log)")

	rootCmd.Flags().StringP("input", "i", "", "read menu input from a file instead of stdin")
	rootCmd.Flags().StringP("output", "o", "", "output format: text or json")
	rootCmd.Flags().Bool("strict", false, "reject students with invalid or repeated subject codes")
	rootCmd.Flags().Uint64("seed", 0, "seed for registration numbers (0 = random)")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("input", rootCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("registration.seed", rootCmd.Flags().Lookup("seed"))
}

// setDefaults registers every config key so unset keys unmarshal to
// config.Defaults().
func setDefaults(v *viper.Viper) {
	defaults := config.Defaults()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("input", defaults.Input)
	v.SetDefault("registration.selection_policy", defaults.Registration.SelectionPolicy)
	v.SetDefault("registration.max_attempts", defaults.Registration.MaxAttempts)
	v.SetDefault("registration.seed", defaults.Registration.Seed)
	v.SetDefault("ui.clear_screen", defaults.UI.ClearScreen)
	v.SetDefault("ui.pause", defaults.UI.Pause)
	v.SetDefault("ui.color", defaults.UI.Color)
}

func initConfig() {
	setDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .registrar/config.yaml (current directory)
		// 2. ~/.config/registrar/config.yaml (user config)
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			viper.SetConfigFile(config.DefaultConfigPath)
		} else if dir := config.UserConfigDir(); dir != "" {
			viper.AddConfigPath(dir)
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	configErr = loadConfig(viper.GetViper(), &cfg)
}

// loadConfig reads the configured file, if any, and unmarshals it over the
// defaults. A missing file in the lookup path is not an error.
func loadConfig(v *viper.Viper, out *config.Config) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		cfg.Registration.SelectionPolicy = registry.PolicyStrict.String()
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.UI.Color = "never"
	}

	cleanup, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	in := cmd.InOrStdin()
	if cfg.Input != "" {
		f, err := os.Open(filepath.Clean(cfg.Input))
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = run(ctx, cfg, in, cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		log.Info(log.CatCLI, "Interrupted")
		return nil
	}
	return err
}

// setupLogging enables the file logger when debug is requested by flag,
// config or REGISTRAR_DEBUG. REGISTRAR_LOG overrides the log path.
func setupLogging(c config.Config) (func(), error) {
	if os.Getenv("REGISTRAR_DEBUG") == "" && !c.Debug {
		return func() {}, nil
	}

	logPath := os.Getenv("REGISTRAR_LOG")
	if logPath == "" {
		logPath = c.LogFile
	}

	cleanup, err := log.Init(logPath)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	if level, err := log.ParseLevel(c.LogLevel); err == nil {
		log.SetMinLevel(level)
	}

	log.Info(log.CatCLI, "Registrar starting", "version", version, "logPath", logPath,
		"config", viper.ConfigFileUsed())
	return cleanup, nil
}

// run validates c and drives one session from in to out.
func run(ctx context.Context, c config.Config, in io.Reader, out io.Writer) error {
	if err := config.Validate(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := styles.ApplyColorMode(c.UI.Color); err != nil {
		return err
	}

	opts, err := c.Registration.Options()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	reg := registry.New(opts...)

	format, err := presentation.NewFormatter(c.Output, out)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Clearing and pausing only make sense for a person at a terminal.
	interactive := terminal.IsTerminal(in) && c.Output == presentation.FormatText
	session := terminal.NewSession(reg, format, in, out, terminal.Options{
		ClearScreen: c.UI.ClearScreen && interactive,
		Pause:       c.UI.Pause && interactive,
	})

	log.Debug(log.CatCLI, "Session configured", "output", c.Output, "policy", reg.Policy(),
		"max_attempts", c.Registration.MaxAttempts, "interactive", interactive)

	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
