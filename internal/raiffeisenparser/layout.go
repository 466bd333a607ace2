package raiffeisenparser

import (
	"fmt"
	"os"
	"unicode/utf8"

	"fjacquet/raiffeisen-csv/internal/dateutils"
	"fjacquet/raiffeisen-csv/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// Field names a semantic value read from a fixed column.
type Field string

const (
	FieldDate     Field = "date"
	FieldMemo     Field = "memo"
	FieldAmount   Field = "amount"
	FieldCurrency Field = "currency"
)

// requiredFields must be mapped by every layout; currency is optional.
var requiredFields = []Field{FieldDate, FieldMemo, FieldAmount}

// Layout describes how one bank export maps columns to fields.
type Layout struct {
	Name       string        `yaml:"name"`
	Delimiter  string        `yaml:"delimiter"`
	DateFormat string        `yaml:"date_format"`
	SkipRows   int           `yaml:"skip_rows"`
	Columns    map[Field]int `yaml:"columns"`
}

// DefaultLayout is the Raiffeisen ELBA / Mein ELBA export: no header,
// date;memo;value date;amount;currency.
func DefaultLayout() Layout {
	return Layout{
		Name:       PluginName,
		Delimiter:  ";",
		DateFormat: "%d.%m.%Y",
		Columns: map[Field]int{
			FieldDate:     0,
			FieldMemo:     1,
			FieldAmount:   3,
			FieldCurrency: 4,
		},
	}
}

// LoadLayout reads a YAML layout file. Keys missing from the file keep their
// DefaultLayout value; a columns table in the file replaces the default one.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- layout path comes from user configuration
	if err != nil {
		return Layout{}, fmt.Errorf("error reading layout file: %w", err)
	}

	layout := DefaultLayout()
	layout.Columns = nil
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("error parsing layout file %s: %w", path, err)
	}
	if layout.Columns == nil {
		layout.Columns = DefaultLayout().Columns
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, &parsererror.ValidationError{FilePath: path, Reason: err.Error()}
	}
	return layout, nil
}

// Validate checks delimiter, date format and column table.
func (l Layout) Validate() error {
	if utf8.RuneCountInString(l.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", l.Delimiter)
	}
	if _, err := l.dateLayout(); err != nil {
		return err
	}
	if l.SkipRows < 0 {
		return fmt.Errorf("skip_rows cannot be negative: %d", l.SkipRows)
	}
	for _, f := range requiredFields {
		if _, ok := l.Columns[f]; !ok {
			return fmt.Errorf("column for %s is not mapped", f)
		}
	}
	for f, idx := range l.Columns {
		if idx < 0 {
			return fmt.Errorf("column for %s cannot be negative: %d", f, idx)
		}
	}
	return nil
}

// Column returns the index mapped to f.
func (l Layout) Column(f Field) (int, bool) {
	idx, ok := l.Columns[f]
	return idx, ok
}

func (l Layout) delimiter() rune {
	r, _ := utf8.DecodeRuneInString(l.Delimiter)
	return r
}

func (l Layout) dateLayout() (string, error) {
	if l.DateFormat == "" {
		return "", fmt.Errorf("date_format is required")
	}
	return dateutils.LayoutFromStrftime(l.DateFormat)
}
