// Package parsererror defines the typed errors returned by statement parsers.
// All of them abort the statement being parsed; none is recovered internally.
package parsererror

import "fmt"

// ParseError reports a field that could not be converted, e.g. a malformed date
// or an amount that is not numeric after normalization.
type ParseError struct {
	Parser string
	Line   int
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: failed to parse %s='%s': %v",
			e.Parser, e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShortRowError reports a row that has fewer columns than the layout reads from.
type ShortRowError struct {
	Parser  string
	Line    int
	Field   string
	Index   int
	Columns int
}

func (e *ShortRowError) Error() string {
	return fmt.Sprintf("%s: line %d: column %d (%s) out of range for row with %d columns",
		e.Parser, e.Line, e.Index, e.Field, e.Columns)
}

// DecodingError reports an input that cannot be read with the configured charset.
type DecodingError struct {
	FilePath string
	Charset  string
	Err      error
}

func (e *DecodingError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("cannot decode input as %s: %v", e.Charset, e.Err)
	}
	return fmt.Sprintf("cannot decode '%s' as %s: %v", e.FilePath, e.Charset, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// ValidationError represents a configuration or input validation failure.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError reports an input file that does not look like the
// format expected by the parser.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
