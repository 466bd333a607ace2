package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionBuilder assembles a Transaction. Build derives the kind from the
// amount sign and computes the identifier exactly once, after every other
// field is set.
type TransactionBuilder struct {
	tx     Transaction
	idFunc TransactionIDFunc
	err    error
}

// NewTransactionBuilder returns a builder using GenerateTransactionID.
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx:     Transaction{Amount: decimal.Zero},
		idFunc: GenerateTransactionID,
	}
}

// WithIDFunc replaces the identifier generator.
func (b *TransactionBuilder) WithIDFunc(fn TransactionIDFunc) *TransactionBuilder {
	if fn == nil {
		b.err = errors.New("transaction id function cannot be nil")
		return b
	}
	b.idFunc = fn
	return b
}

// WithDate sets the booking date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.tx.Date = date
	return b
}

// WithAmount sets the signed amount.
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	b.tx.Amount = amount
	return b
}

// WithMemo sets the memo.
func (b *TransactionBuilder) WithMemo(memo string) *TransactionBuilder {
	b.tx.Memo = memo
	return b
}

// WithPayee sets the payee name.
func (b *TransactionBuilder) WithPayee(payee string) *TransactionBuilder {
	b.tx.Payee = payee
	return b
}

// WithCounterparty sets the counterparty bank and account identifiers.
func (b *TransactionBuilder) WithCounterparty(bankID, accountID string) *TransactionBuilder {
	b.tx.SetCounterparty(bankID, accountID)
	return b
}

// WithCheckNo sets the reference / check number.
func (b *TransactionBuilder) WithCheckNo(checkNo string) *TransactionBuilder {
	b.tx.CheckNo = checkNo
	return b
}

// Build finalizes the transaction.
func (b *TransactionBuilder) Build() (*Transaction, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.tx.Date.IsZero() {
		return nil, errors.New("transaction date is required")
	}

	tx := b.tx
	tx.TrnType = KindForAmount(tx.Amount)
	tx.ID = b.idFunc(&tx)
	return &tx, nil
}
