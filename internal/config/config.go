// Package config wires the reactor CLI's persistent flags to a
// ~/.reactor.yaml file via viper, following the same bind-flags-then-
// read-config-file pattern as the rest of the Cobra-based command
// examples in this codebase's lineage.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the resolved set of options read from flags, environment,
// and the config file, in that precedence order (viper's default).
type Config struct {
	// Strict makes `validate` fail when loading or assembling the model
	// produced any warning (importer warnings, document validation
	// warnings, or Model.Warnings() entries). Unrecognized attribute keys
	// produce no warning, so Strict does not catch them.
	Strict bool
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
	// Format selects the log encoding: "text" (console) or "json". Command
	// results are printed as plain text either way.
	Format string
}

const (
	keyStrict   = "strict"
	keyLogLevel = "log-level"
	keyFormat   = "format"

	defaultConfigName = ".reactor"
	defaultConfigType = "yaml"
)

// BindFlags registers the persistent flags shared by every subcommand and
// binds them into viper, so that ~/.reactor.yaml values are used whenever
// a flag is left at its default.
func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(keyStrict, false, "treat model warnings as fatal errors")
	cmd.PersistentFlags().String(keyLogLevel, "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String(keyFormat, "text", "output format: text or json")

	_ = viper.BindPFlag(keyStrict, cmd.PersistentFlags().Lookup(keyStrict))
	_ = viper.BindPFlag(keyLogLevel, cmd.PersistentFlags().Lookup(keyLogLevel))
	_ = viper.BindPFlag(keyFormat, cmd.PersistentFlags().Lookup(keyFormat))
}

// Init locates and reads ~/.reactor.yaml, if present. A missing config
// file is not an error: flags and viper's defaults still apply.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot determine home directory: %w", err)
	}

	viper.AddConfigPath(home)
	viper.SetConfigName(defaultConfigName)
	viper.SetConfigType(defaultConfigType)
	viper.SetEnvPrefix("REACTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading %s: %w", filepath.Join(home, defaultConfigName+"."+defaultConfigType), err)
	}
	return nil
}

// Load resolves the final Config after BindFlags and Init have run.
func Load() *Config {
	return &Config{
		Strict:   viper.GetBool(keyStrict),
		LogLevel: viper.GetString(keyLogLevel),
		Format:   viper.GetString(keyFormat),
	}
}
