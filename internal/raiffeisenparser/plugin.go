package raiffeisenparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"fjacquet/raiffeisen-csv/internal/fileutils"
	"fjacquet/raiffeisen-csv/internal/logging"
	"fjacquet/raiffeisen-csv/internal/models"
	"fjacquet/raiffeisen-csv/internal/parser"
	"fjacquet/raiffeisen-csv/internal/parsererror"
	"fjacquet/raiffeisen-csv/internal/textutils"
)

// PluginName is the registry key of the Raiffeisen plugin.
const PluginName = "raiffeisen"

const (
	defaultAccount = "default"
	defaultBank    = "Raiffeisen"
)

// Settings are the user-facing plugin options.
type Settings struct {
	Charset    string
	Account    string
	Bank       string
	IDScheme   string
	LayoutFile string
}

// DefaultSettings returns UTF-8 (BOM tolerant) input, account "default",
// bank "Raiffeisen" and SHA-256 identifiers.
func DefaultSettings() Settings {
	return Settings{
		Charset:  fileutils.DefaultCharset,
		Account:  defaultAccount,
		Bank:     defaultBank,
		IDScheme: models.IDSchemeSHA256,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Charset == "" {
		s.Charset = d.Charset
	}
	if s.Account == "" {
		s.Account = d.Account
	}
	if s.Bank == "" {
		s.Bank = d.Bank
	}
	if s.IDScheme == "" {
		s.IDScheme = d.IDScheme
	}
	return s
}

// Plugin turns settings into parsers for individual files.
type Plugin struct {
	settings Settings
	logger   logging.Logger
}

var _ parser.StatementParser = (*Plugin)(nil)

// NewPlugin creates the plugin. Empty settings fall back to DefaultSettings.
func NewPlugin(settings Settings, logger logging.Logger) *Plugin {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Plugin{
		settings: settings.withDefaults(),
		logger:   logger,
	}
}

// Name implements parser.StatementParser.
func (p *Plugin) Name() string {
	return PluginName
}

// Description implements parser.StatementParser.
func (p *Plugin) Description() string {
	return "Raiffeisenbank (ELBA / Mein ELBA CSV export)"
}

// Settings returns the effective settings.
func (p *Plugin) Settings() Settings {
	return p.settings
}

// NewParser builds a parser from the settings, loading the layout file if one
// is configured.
func (p *Plugin) NewParser() (*Parser, error) {
	idFunc, err := models.NewTransactionIDFunc(p.settings.IDScheme)
	if err != nil {
		return nil, &parsererror.ValidationError{FilePath: "settings", Reason: err.Error()}
	}

	layout := DefaultLayout()
	if p.settings.LayoutFile != "" {
		layout, err = LoadLayout(p.settings.LayoutFile)
		if err != nil {
			return nil, err
		}
	}

	return NewParser(p.logger,
		WithLayout(layout),
		WithIDFunc(idFunc),
		WithAccount(p.settings.Account, p.settings.Bank))
}

// ParseFile decodes the file with the configured charset and parses it. The
// whole file is decoded first, so charset problems surface before any row.
func (p *Plugin) ParseFile(filePath string) (*models.Statement, error) {
	p.logger.Info("Parsing Raiffeisen CSV file",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCharset, Value: p.settings.Charset})

	prs, err := p.NewParser()
	if err != nil {
		return nil, err
	}

	data, err := fileutils.ReadDecoded(filePath, p.settings.Charset)
	if err != nil {
		p.logger.WithError(err).Error("Failed to read Raiffeisen CSV file",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return nil, err
	}

	st, err := prs.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filePath, err)
	}
	return st, nil
}

// ValidateFormat reports whether the first data row of the file looks like a
// Raiffeisen booking. Unreadable files return an error; a readable file with
// no rows is simply not valid.
func (p *Plugin) ValidateFormat(filePath string) (bool, error) {
	p.logger.Debug("Validating Raiffeisen CSV format",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	prs, err := p.NewParser()
	if err != nil {
		return false, err
	}

	data, err := fileutils.ReadDecoded(filePath, p.settings.Charset)
	if err != nil {
		return false, err
	}

	rows := newRowSource(newRowReader(bytes.NewReader(data), prs.layout.delimiter()))
	for {
		fields, _, err := rows.next()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, &parsererror.InvalidFormatError{
				FilePath:             filePath,
				ExpectedFormat:       "Raiffeisen CSV",
				ActualContentSnippet: textutils.Snippet(string(data), 60),
				Msg:                  err.Error(),
			}
		}
		if rows.count <= prs.layout.SkipRows {
			continue
		}
		return prs.ValidateRecord(fields), nil
	}
}
