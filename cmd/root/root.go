// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/raiffeisen-csv/internal/config"
	"fjacquet/raiffeisen-csv/internal/container"
	"fjacquet/raiffeisen-csv/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded by PersistentPreRunE
	AppConfig *config.Config

	// AppContainer holds the dependencies built from AppConfig
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "raiffeisen-csv",
		Short: "A CLI tool to parse Raiffeisen CSV statement exports.",
		Long: `raiffeisen-csv parses the semicolon separated statement exports of
Raiffeisen banks (ELBA and Mein ELBA) into normalized statements. Booking texts
are split into payee, counterparty account, reference and memo.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to raiffeisen-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize()
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// ConfigFile overrides the config.yaml lookup
	ConfigFile string

	// LogLevel overrides log.level from the configuration
	LogLevel string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before parsing")
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default is ./config.yaml or $HOME/.raiffeisen-csv/config.yaml)")
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}

func initialize() error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfig(ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if LogLevel != "" {
		cfg.Log.Level = LogLevel
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// GetContainer returns the application container, or nil before initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the loaded configuration, or nil before initialization.
func GetConfig() *config.Config {
	return AppConfig
}

// GetLogger returns the shared command logger.
func GetLogger() logging.Logger {
	return Log
}
