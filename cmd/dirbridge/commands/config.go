package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the CLI settings.
//
// Precedence, highest first: command-line flags, environment variables
// (DIRBRIDGE_*, with '.' replaced by '_'), the config file, defaults.
type Config struct {
	Output string    `mapstructure:"output"`
	Log    LogConfig `mapstructure:"log"`
}

// LogConfig controls the diagnostic logger written to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"output":     "output",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// loadConfig resolves the configuration for cmd.
func loadConfig(cmd *cobra.Command, configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output", string(FormatTable))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Example: DIRBRIDGE_LOG_LEVEL=debug
	v.SetEnvPrefix("DIRBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("configuration file not found: %s", configPath)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, err := ParseFormat(cfg.Output); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newLogger builds the slog logger described by cfg.
func newLogger(w io.Writer, cfg LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %q (valid: debug, info, warn, error)", cfg.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %q (valid: text, json)", cfg.Format)
	}
}
