// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"

	"fjacquet/raiffeisen-csv/internal/currencyutils"
	"fjacquet/raiffeisen-csv/internal/dateutils"
	"fjacquet/raiffeisen-csv/internal/logging"
	"fjacquet/raiffeisen-csv/internal/models"
	"fjacquet/raiffeisen-csv/internal/parser"
	"fjacquet/raiffeisen-csv/internal/parsererror"
)

// ErrNoInput is returned when no input file was given.
var ErrNoInput = errors.New("input file is required (use --input)")

// ProcessFile optionally validates inputFile and parses it with p.
func ProcessFile(p parser.StatementParser, inputFile string, validate bool, log logging.Logger) (*models.Statement, error) {
	if inputFile == "" {
		return nil, ErrNoInput
	}
	log = log.WithFields(
		logging.Field{Key: logging.FieldParser, Value: p.Name()},
		logging.Field{Key: logging.FieldFile, Value: inputFile})

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return nil, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return nil, &parsererror.InvalidFormatError{
				FilePath:       inputFile,
				ExpectedFormat: p.Description(),
				Msg:            "the file is not in a valid format",
			}
		}
		log.Info("Validation successful.")
	}

	st, err := p.ParseFile(inputFile)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// LogSummary logs the statement aggregates and one debug line per transaction.
func LogSummary(st *models.Statement, log logging.Logger) {
	log.Info("Statement parsed",
		logging.Field{Key: logging.FieldAccount, Value: st.AccountID},
		logging.Field{Key: logging.FieldBank, Value: st.BankID},
		logging.Field{Key: logging.FieldCurrency, Value: st.Currency},
		logging.Field{Key: logging.FieldCount, Value: len(st.Lines)},
		logging.Field{Key: "start_date", Value: dateutils.ToISODate(st.StartDate)},
		logging.Field{Key: "end_date", Value: dateutils.ToISODate(st.EndDate)},
		logging.Field{Key: "start_balance", Value: currencyutils.FormatAmount(st.StartBalance.Decimal, st.Currency)},
		logging.Field{Key: "end_balance", Value: currencyutils.FormatAmount(st.EndBalance.Decimal, st.Currency)})

	for _, tx := range st.Lines {
		fields := []logging.Field{
			{Key: logging.FieldTransactionID, Value: tx.ID},
			{Key: "date", Value: dateutils.ToISODate(tx.Date)},
			{Key: "amount", Value: currencyutils.FormatAmount(tx.Amount, st.Currency)},
			{Key: "trntype", Value: tx.TrnType.String()},
			{Key: "payee", Value: tx.Payee},
			{Key: "memo", Value: tx.Memo},
		}
		if tx.BankAccountTo != nil {
			fields = append(fields,
				logging.Field{Key: "bank_id", Value: tx.BankAccountTo.BankID},
				logging.Field{Key: "account_id", Value: tx.BankAccountTo.AccountID})
		}
		if tx.CheckNo != "" {
			fields = append(fields, logging.Field{Key: "check_no", Value: tx.CheckNo})
		}
		log.Debug("Transaction", fields...)
	}
}
