// Package commands implements the dirbridge diagnostic CLI.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// env carries the resolved configuration to subcommands.
// It is filled in by the root command's PersistentPreRunE.
type env struct {
	cfg    *Config
	format Format
	logger *slog.Logger
}

// NewRootCmd builds the dirbridge command tree.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		e       = &env{}
	)

	rootCmd := &cobra.Command{
		Use:   "dirbridge",
		Short: "Inspect the bridge between LDAP errors, names and controls and the naming API",
		Long: `dirbridge exercises the translation layer between the LDAP directory
model and the generic naming API: the error mapping table, distinguished
name conversion, error translation and control encoding.

Use "dirbridge [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, cfgFile)
			if err != nil {
				return err
			}
			format, err := ParseFormat(cfg.Output)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}

			e.cfg = cfg
			e.format = format
			e.logger = logger
			logger.Debug("configuration loaded",
				"output", cfg.Output,
				"log_level", cfg.Log.Level,
				"config_file", cfgFile)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table|json)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text|json)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTableCmd(e))
	rootCmd.AddCommand(newNameCmd(e))
	rootCmd.AddCommand(newTranslateCmd(e))
	rootCmd.AddCommand(newControlCmd(e))

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// Execute runs the dirbridge command tree.
// This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}
