package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is the ordered set of lines of one account plus its aggregates.
type Statement struct {
	AccountID    string              `json:"account_id" yaml:"account_id"`
	BankID       string              `json:"bank_id" yaml:"bank_id"`
	Currency     string              `json:"currency" yaml:"currency"`
	StartBalance decimal.NullDecimal `json:"start_balance" yaml:"start_balance"`
	EndBalance   decimal.NullDecimal `json:"end_balance" yaml:"end_balance"`
	StartDate    time.Time           `json:"start_date" yaml:"start_date"`
	EndDate      time.Time           `json:"end_date" yaml:"end_date"`
	Lines        []*Transaction      `json:"lines" yaml:"lines"`
}

// NewStatement returns an empty statement for the given account and bank.
func NewStatement(accountID, bankID string) *Statement {
	return &Statement{
		AccountID: accountID,
		BankID:    bankID,
	}
}

// SetCurrencyOnce records currency unless one is already set or the value is
// empty. It reports whether the currency was taken.
func (s *Statement) SetCurrencyOnce(currency string) bool {
	if s.Currency != "" || currency == "" {
		return false
	}
	s.Currency = currency
	return true
}

// Total returns the exact sum of all line amounts.
func (s *Statement) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.Amount)
	}
	return total
}

// RecalculateBalance derives the end balance and the date range from the
// lines. A missing start balance is taken as zero. With no lines the dates
// are left untouched.
func (s *Statement) RecalculateBalance() {
	if !s.StartBalance.Valid {
		s.StartBalance = decimal.NewNullDecimal(decimal.Zero)
	}
	s.EndBalance = decimal.NewNullDecimal(s.StartBalance.Decimal.Add(s.Total()))

	if len(s.Lines) == 0 {
		return
	}
	start, end := s.Lines[0].Date, s.Lines[0].Date
	for _, line := range s.Lines[1:] {
		if line.Date.Before(start) {
			start = line.Date
		}
		if line.Date.After(end) {
			end = line.Date
		}
	}
	s.StartDate = start
	s.EndDate = end
}
