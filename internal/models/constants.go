package models

import "github.com/aclindsa/ofxgo"

// TransactionType is the kind of a statement line.
type TransactionType string

func (t TransactionType) String() string {
	return string(t)
}

// Transaction kinds. The values are the OFX TRNTYPE codes so hosts that emit OFX
// can use them unchanged.
var (
	TransactionTypeCredit = TransactionType(ofxgo.TrnTypeCredit.String())
	TransactionTypeDebit  = TransactionType(ofxgo.TrnTypeDebit.String())
)

// Identifier schemes understood by NewTransactionIDFunc.
const (
	IDSchemeSHA256 = "sha256"
	IDSchemeUUID   = "uuid"
)
