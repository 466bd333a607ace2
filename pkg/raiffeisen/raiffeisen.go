// Package raiffeisen is the public entry point for hosts that embed the
// Raiffeisen CSV parser without the CLI.
//
//	st, err := raiffeisen.ParseFile("export.csv", raiffeisen.Settings{Charset: "cp1252"})
package raiffeisen

import (
	"bytes"
	"fmt"
	"io"

	"fjacquet/raiffeisen-csv/internal/fileutils"
	"fjacquet/raiffeisen-csv/internal/logging"
	"fjacquet/raiffeisen-csv/internal/models"
	"fjacquet/raiffeisen-csv/internal/raiffeisenparser"
)

type (
	// Statement is a parsed statement with its lines and balances.
	Statement = models.Statement
	// Transaction is one statement line.
	Transaction = models.Transaction
	// BankAccount identifies a counterparty account.
	BankAccount = models.BankAccount
	// Settings are the plugin options; zero values take the defaults.
	Settings = raiffeisenparser.Settings
	// Logger receives diagnostic output.
	Logger = logging.Logger
)

// Name is the plugin name hosts register the parser under.
const Name = raiffeisenparser.PluginName

// DefaultSettings returns charset utf-8-sig, account "default" and bank "Raiffeisen".
func DefaultSettings() Settings {
	return raiffeisenparser.DefaultSettings()
}

// ParseFile parses a statement file. A nil logger logs at info level to stderr.
func ParseFile(path string, settings Settings, logger ...Logger) (*Statement, error) {
	return raiffeisenparser.NewPlugin(settings, firstLogger(logger)).ParseFile(path)
}

// Parse decodes r with the configured charset and parses it.
func Parse(r io.Reader, settings Settings, logger ...Logger) (*Statement, error) {
	plugin := raiffeisenparser.NewPlugin(settings, firstLogger(logger))
	p, err := plugin.NewParser()
	if err != nil {
		return nil, err
	}

	data, err := fileutils.DecodeReader(r, plugin.Settings().Charset, "")
	if err != nil {
		return nil, err
	}
	st, err := p.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing Raiffeisen statement: %w", err)
	}
	return st, nil
}

// ValidateFormat reports whether the file looks like a Raiffeisen export.
func ValidateFormat(path string, settings Settings) (bool, error) {
	return raiffeisenparser.NewPlugin(settings, logging.NewLogrusAdapter("warn", "text")).ValidateFormat(path)
}

func firstLogger(loggers []Logger) Logger {
	if len(loggers) > 0 && loggers[0] != nil {
		return loggers[0]
	}
	return nil
}
