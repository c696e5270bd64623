package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/msto63/libmgr/internal/config"
	"github.com/msto63/libmgr/internal/library"
	"github.com/msto63/libmgr/internal/logging"
	"github.com/msto63/libmgr/internal/registry"
	"github.com/msto63/libmgr/internal/ui"
)

var (
	cfgFile      string
	settingsFile string
	logLevel     string
	logFormat    string
	verbose      bool
	plain        bool
)

var rootCmd = &cobra.Command{
	Use:   "libmgr",
	Short: "Library Manager - manage large data models on disk",
	Long: `libmgr keeps a registry of named data models and the directories
that back them, and lets you inspect, relocate or delete those directories.

The registry is a JSON file (default: ./config.json), created on first use.

Examples:
  libmgr show llama-7b
  libmgr move llama-7b /mnt/archive/llama-7b
  libmgr delete llama-7b
  libmgr --config ~/models.json list`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.NewPrinter(cmd.OutOrStdout(), true).InvalidCommand()
		return nil
	},
}

// ExecuteContext runs the command tree and reports a failure on stderr
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", registry.DefaultPath, "Registry file")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "Settings file, TOML or YAML (default: ./libmgr.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable styled output")
}

func printError(err error) {
	ui.NewPrinter(rootCmd.ErrOrStderr(), plain).Error(err)
}

// loadSettings merges the settings file, environment and flags
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if settingsFile != "" {
		cfg, err = config.Load(settingsFile)
		if err == nil {
			cfg.ApplyEnv()
		}
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		cfg.General.Registry = cfgFile
	}
	if flags.Changed("log-level") {
		cfg.General.LogLevel = logLevel
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if flags.Changed("log-format") {
		cfg.General.LogFormat = logFormat
	}
	if flags.Changed("plain") {
		cfg.Output.Plain = plain
	}
	return cfg, nil
}

// newManager wires the registry store, printer and logger for one invocation
func newManager(cmd *cobra.Command) (*library.Manager, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultLoggerConfig("libmgr")
	logCfg.Level = cfg.General.LogLevel
	logCfg.Format = cfg.General.LogFormat
	logCfg.Output = cmd.ErrOrStderr()
	log := logging.NewLogger(logCfg)

	log.WithFields(logrus.Fields{
		"registry": cfg.General.Registry,
		"settings": cfg.Source(),
	}).Debug("configuration resolved")

	out := ui.NewPrinter(cmd.OutOrStdout(), cfg.Output.Plain)
	store := registry.NewStore(cfg.General.Registry)
	return library.NewManager(store, out, library.WithLogger(log)), nil
}

// runCommand decodes the subcommand and its arguments and executes it
func runCommand(cmd *cobra.Command, args []string, adjust ...func(*library.Command)) error {
	c, err := library.Parse(append([]string{cmd.Name()}, args...))
	if err != nil {
		return err
	}
	for _, fn := range adjust {
		fn(&c)
	}

	mgr, err := newManager(cmd)
	if err != nil {
		return err
	}
	_, err = mgr.Execute(cmd.Context(), c)
	return err
}
