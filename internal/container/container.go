// Package container provides dependency injection for the raiffeisen-csv
// application. It creates the logger and the statement parsers from the
// configuration and hands them out through getters.
package container

import (
	"fmt"

	"fjacquet/raiffeisen-csv/internal/config"
	"fjacquet/raiffeisen-csv/internal/logging"
	"fjacquet/raiffeisen-csv/internal/parser"
	"fjacquet/raiffeisen-csv/internal/raiffeisenparser"
)

// Container holds all application dependencies. It is immutable after
// creation.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	registry *parser.Registry
}

// Option customizes container construction.
type Option func(*Container)

// WithLogger replaces the logrus logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	c := &Container{
		config:   cfg,
		registry: parser.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	c.registry.Register(raiffeisenparser.NewPlugin(PluginSettings(cfg), c.logger))

	c.logger.Debug("Container initialized",
		logging.Field{Key: "parsers_count", Value: len(c.registry.Names())},
		logging.Field{Key: logging.FieldCharset, Value: cfg.Plugin.Charset},
		logging.Field{Key: logging.FieldAccount, Value: cfg.Plugin.Account})

	return c, nil
}

// PluginSettings maps the plugin section of cfg onto Raiffeisen settings.
func PluginSettings(cfg *config.Config) raiffeisenparser.Settings {
	return raiffeisenparser.Settings{
		Charset:    cfg.Plugin.Charset,
		Account:    cfg.Plugin.Account,
		Bank:       cfg.Plugin.Bank,
		IDScheme:   cfg.Plugin.IDScheme,
		LayoutFile: cfg.Plugin.LayoutFile,
	}
}

// GetParser returns the parser registered under name.
func (c *Container) GetParser(name string) (parser.StatementParser, error) {
	return c.registry.Get(name)
}

// ParserNames lists the registered parsers.
func (c *Container) ParserNames() []string {
	return c.registry.Names()
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}
