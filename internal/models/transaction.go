// Package models holds the normalized statement produced by the parsers.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount identifies the counterparty account of a transaction.
type BankAccount struct {
	BankID    string `json:"bank_id" yaml:"bank_id"`       // BIC
	AccountID string `json:"account_id" yaml:"account_id"` // IBAN
}

// IsEmpty reports whether neither identifier is known.
func (a BankAccount) IsEmpty() bool {
	return a.BankID == "" && a.AccountID == ""
}

// Transaction is one statement line.
//
// Optional fields are empty strings (or a nil BankAccountTo) when the source
// row does not carry them.
type Transaction struct {
	ID            string          `json:"id" yaml:"id"`
	Date          time.Time       `json:"date" yaml:"date"`
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	TrnType       TransactionType `json:"trntype" yaml:"trntype"`
	Memo          string          `json:"memo" yaml:"memo"`
	Payee         string          `json:"payee,omitempty" yaml:"payee,omitempty"`
	BankAccountTo *BankAccount    `json:"bank_account_to,omitempty" yaml:"bank_account_to,omitempty"`
	CheckNo       string          `json:"check_no,omitempty" yaml:"check_no,omitempty"`
}

// KindForAmount returns DEBIT for negative amounts and CREDIT otherwise;
// zero is a credit.
func KindForAmount(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return TransactionTypeDebit
	}
	return TransactionTypeCredit
}

// IsDebit reports whether the transaction moves money out of the account.
func (t *Transaction) IsDebit() bool {
	return t.TrnType == TransactionTypeDebit
}

// SetCounterparty stores the counterparty account, leaving BankAccountTo nil
// when both identifiers are empty.
func (t *Transaction) SetCounterparty(bankID, accountID string) {
	acct := BankAccount{BankID: bankID, AccountID: accountID}
	if acct.IsEmpty() {
		t.BankAccountTo = nil
		return
	}
	t.BankAccountTo = &acct
}
