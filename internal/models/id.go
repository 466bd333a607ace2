package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// TransactionIDFunc derives a transaction identifier from a finalized line.
// Identical lines get identical identifiers.
type TransactionIDFunc func(tx *Transaction) string

// transactionIDNamespace scopes the name-based UUIDs produced by
// GenerateTransactionUUID.
var transactionIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:raiffeisen-csv:transaction"))

// GenerateTransactionID hashes date, memo and amount with SHA-256 and returns
// the hex digest, the convention statement hosts use when the bank provides
// no transaction id.
func GenerateTransactionID(tx *Transaction) string {
	h := sha256.New()
	h.Write([]byte(idDate(tx)))
	h.Write([]byte(tx.Memo))
	h.Write([]byte(tx.Amount.String()))
	return hex.EncodeToString(h.Sum(nil))
}

// GenerateTransactionUUID returns a name-based (version 5) UUID over the same
// inputs as GenerateTransactionID.
func GenerateTransactionUUID(tx *Transaction) string {
	name := fmt.Sprintf("%s|%s|%s", idDate(tx), tx.Memo, tx.Amount.String())
	return uuid.NewSHA1(transactionIDNamespace, []byte(name)).String()
}

// NewTransactionIDFunc maps an id scheme name to its generator.
func NewTransactionIDFunc(scheme string) (TransactionIDFunc, error) {
	switch scheme {
	case "", IDSchemeSHA256:
		return GenerateTransactionID, nil
	case IDSchemeUUID:
		return GenerateTransactionUUID, nil
	default:
		return nil, fmt.Errorf("unknown transaction id scheme: %s", scheme)
	}
}

func idDate(tx *Transaction) string {
	return tx.Date.Format("2006-01-02")
}
