// Package currencyutils converts bank amount strings into exact decimals.
package currencyutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyAmount is returned when an amount cell is blank.
var ErrEmptyAmount = errors.New("amount is empty")

// groupedThousands matches German amounts without a decimal part that still
// use '.' as thousands separator, e.g. "1.234" or "-12.345.678".
var groupedThousands = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

var amountNoise = strings.NewReplacer(" ", "", "\u00a0", "", "'", "")

// FixAmountString rewrites a German formatted amount ("-1.234,56", "+123,60")
// into the canonical form decimal.NewFromString accepts ("-1234.56", "123.60").
//
// When a comma is present it is the decimal separator and every '.' is a
// thousands separator. Without a comma, '.' is only dropped when the string is
// made of 3-digit groups; anything else is returned as is.
func FixAmountString(amountStr string) string {
	s := amountNoise.Replace(strings.TrimSpace(amountStr))
	s = strings.TrimPrefix(s, "+")

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		return strings.ReplaceAll(s, ",", ".")
	}
	if groupedThousands.MatchString(s) {
		return strings.ReplaceAll(s, ".", "")
	}
	return s
}

// ParseAmount normalizes amountStr with FixAmountString and parses it. Blank
// or non-numeric input is an error; there is no zero fallback.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	fixed := FixAmountString(amountStr)
	if fixed == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	amount, err := decimal.NewFromString(fixed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatAmount renders amount with two decimals followed by the currency code.
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currency
}
