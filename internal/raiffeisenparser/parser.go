// Package raiffeisenparser parses the semicolon separated statement exports of
// Raiffeisen banks (ELBA and Mein ELBA) into models.Statement values.
//
// Every row is mapped through a Layout, its booking text is split on the
// German label vocabulary (Auftraggeber, Verwendungszweck, ...) and the labels
// are promoted into payee, counterparty account, reference and memo. Parsing
// fails on the first malformed row; no partial statement is returned.
package raiffeisenparser

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/raiffeisen-csv/internal/currencyutils"
	"fjacquet/raiffeisen-csv/internal/dateutils"
	"fjacquet/raiffeisen-csv/internal/logging"
	"fjacquet/raiffeisen-csv/internal/models"
	"fjacquet/raiffeisen-csv/internal/parsererror"
	"fjacquet/raiffeisen-csv/internal/textutils"
)

// Parser converts Raiffeisen CSV rows into statement lines.
type Parser struct {
	logger     logging.Logger
	layout     Layout
	dateLayout string
	idFunc     models.TransactionIDFunc
	accountID  string
	bankID     string
}

// Option configures a Parser.
type Option func(*Parser)

// WithLayout replaces DefaultLayout.
func WithLayout(layout Layout) Option {
	return func(p *Parser) {
		p.layout = layout
	}
}

// WithIDFunc replaces the transaction identifier generator.
func WithIDFunc(fn models.TransactionIDFunc) Option {
	return func(p *Parser) {
		if fn != nil {
			p.idFunc = fn
		}
	}
}

// WithAccount sets the account and bank identifiers stamped on the statement.
func WithAccount(accountID, bankID string) Option {
	return func(p *Parser) {
		p.accountID = accountID
		p.bankID = bankID
	}
}

// NewParser creates a parser. A nil logger falls back to a logrus adapter at
// info level.
func NewParser(logger logging.Logger, opts ...Option) (*Parser, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	p := &Parser{
		logger:    logger.WithField(logging.FieldParser, PluginName),
		layout:    DefaultLayout(),
		idFunc:    models.GenerateTransactionID,
		accountID: defaultAccount,
		bankID:    defaultBank,
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout %q: %w", p.layout.Name, err)
	}
	dateLayout, err := p.layout.dateLayout()
	if err != nil {
		return nil, err
	}
	p.dateLayout = dateLayout
	return p, nil
}

// Layout returns the layout in use.
func (p *Parser) Layout() Layout {
	return p.layout
}

// Parse reads already decoded CSV text from r. Lines keep source order and the
// balances and dates are recalculated once all rows are read.
func (p *Parser) Parse(r io.Reader) (*models.Statement, error) {
	st := models.NewStatement(p.accountID, p.bankID)
	rows := newRowSource(newRowReader(r, p.layout.delimiter()))

	for {
		fields, line, err := rows.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			p.logger.WithError(err).Error("Failed to read Raiffeisen CSV row")
			return nil, fmt.Errorf("error reading Raiffeisen CSV: %w", err)
		}
		if rows.count <= p.layout.SkipRows {
			continue
		}

		tx, err := p.parseRecord(st, line, fields)
		if err != nil {
			p.logger.WithError(err).Error("Failed to parse Raiffeisen CSV row",
				logging.Field{Key: logging.FieldLine, Value: line})
			return nil, err
		}
		st.Lines = append(st.Lines, tx)
	}

	st.RecalculateBalance()

	p.logger.Info("Parsed Raiffeisen statement",
		logging.Field{Key: logging.FieldCount, Value: len(st.Lines)},
		logging.Field{Key: logging.FieldCurrency, Value: st.Currency},
		logging.Field{Key: logging.FieldDelimiter, Value: string(p.layout.delimiter())})
	return st, nil
}

// parseRecord maps one row. The currency column, when present, seeds the
// statement currency before any other field is read.
func (p *Parser) parseRecord(st *models.Statement, line int, fields []string) (*models.Transaction, error) {
	if idx, ok := p.layout.Column(FieldCurrency); ok && idx < len(fields) {
		if st.SetCurrencyOnce(fields[idx]) {
			p.logger.Debug("Captured statement currency",
				logging.Field{Key: logging.FieldCurrency, Value: st.Currency},
				logging.Field{Key: logging.FieldLine, Value: line})
		}
	}

	dateStr, err := p.column(fields, line, FieldDate)
	if err != nil {
		return nil, err
	}
	date, err := dateutils.ParseDate(dateStr, p.dateLayout)
	if err != nil {
		return nil, &parsererror.ParseError{Parser: PluginName, Line: line, Field: string(FieldDate), Value: dateStr, Err: err}
	}

	rawMemo, err := p.column(fields, line, FieldMemo)
	if err != nil {
		return nil, err
	}

	amountStr, err := p.column(fields, line, FieldAmount)
	if err != nil {
		return nil, err
	}
	amount, err := currencyutils.ParseAmount(amountStr)
	if err != nil {
		return nil, &parsererror.ParseError{Parser: PluginName, Line: line, Field: string(FieldAmount), Value: amountStr, Err: err}
	}

	memo := textutils.CollapseWhitespace(rawMemo)
	promoted := DecomposeMemo(memo).Resolve(memo)

	tx, err := models.NewTransactionBuilder().
		WithIDFunc(p.idFunc).
		WithDate(date).
		WithAmount(amount).
		WithMemo(promoted.Memo).
		WithPayee(promoted.Payee).
		WithCounterparty(promoted.BankID, promoted.AccountID).
		WithCheckNo(promoted.CheckNo).
		Build()
	if err != nil {
		return nil, fmt.Errorf("%s: line %d: %w", PluginName, line, err)
	}
	return tx, nil
}

func (p *Parser) column(fields []string, line int, f Field) (string, error) {
	idx, _ := p.layout.Column(f)
	if idx >= len(fields) {
		return "", &parsererror.ShortRowError{
			Parser:  PluginName,
			Line:    line,
			Field:   string(f),
			Index:   idx,
			Columns: len(fields),
		}
	}
	return fields[idx], nil
}

// ValidateRecord reports whether fields look like a Raiffeisen booking: the
// date, memo and amount columns exist and the date and amount parse.
func (p *Parser) ValidateRecord(fields []string) bool {
	for _, f := range requiredFields {
		if idx, _ := p.layout.Column(f); idx >= len(fields) {
			return false
		}
	}
	date, _ := p.layout.Column(FieldDate)
	if _, err := dateutils.ParseDate(fields[date], p.dateLayout); err != nil {
		return false
	}
	amount, _ := p.layout.Column(FieldAmount)
	if _, err := currencyutils.ParseAmount(fields[amount]); err != nil {
		return false
	}
	return true
}
