// Package cmd implements the cardshow CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomortec/drift-expandable/pkg/errors"
	"github.com/tomortec/drift-expandable/pkg/logging"
)

// Version is set at build time.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "cardshow",
	Short: "Preview galleries of expandable cards",
	Long: `cardshow loads a gallery of expandable cards from YAML, mounts it
headlessly, and validates, inspects or renders it to PNG.

Settings come from cardshow.yaml (current directory or
$HOME/.config/cardshow), CARDSHOW_* environment variables and flags.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./cardshow.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cardshow")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/cardshow")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CARDSHOW")
	// CARDSHOW_LOG_LEVEL for log.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}

// setupLogging installs the configured logger as the default and routes
// framework errors through it.
func setupLogging(cmd *cobra.Command, _ []string) error {
	settings := Get()
	logger, err := logging.NewLogger(cmd.ErrOrStderr(), settings.Log.Level, settings.Log.Format)
	if err != nil {
		return configError("cardshow", err)
	}
	logging.SetDefault(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger.WithComponent("cardshow")})
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("loaded settings", "file", used)
	}
	return nil
}

func configError(op string, err error) error {
	return &errors.DriftError{Op: op, Kind: errors.KindConfig, Err: err}
}

func renderError(op string, err error) error {
	return &errors.DriftError{Op: op, Kind: errors.KindRender, Err: err}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
