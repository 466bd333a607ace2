// Package parser defines the contract between the host and statement plugins.
package parser

import "fjacquet/raiffeisen-csv/internal/models"

// StatementParser turns one bank export file into a statement.
type StatementParser interface {
	// Name is the registry key, e.g. "raiffeisen".
	Name() string

	// Description is a human readable label for listings.
	Description() string

	// ParseFile parses the file and returns the complete statement. Any
	// malformed row aborts the parse; no partial statement is returned.
	ParseFile(filePath string) (*models.Statement, error)

	// ValidateFormat reports whether the file looks like this parser's format.
	ValidateFormat(filePath string) (bool, error)
}
