package raiffeisenparser

import (
	"regexp"
	"sort"
	"strings"

	"fjacquet/raiffeisen-csv/internal/textutils"
)

// Labels that structure the Raiffeisen booking text. Each one is followed by
// ": " in the memo.
const (
	LabelAuftraggeber           = "Auftraggeber"
	LabelZahlungsempfaenger     = "Zahlungsempfänger"
	LabelEmpfaenger             = "Empfänger"
	LabelBICAuftraggeber        = "BIC Auftraggeber"
	LabelBICZahlungsempfaenger  = "BIC Zahlungsempfänger"
	LabelBICEmpfaenger          = "BIC Empfänger"
	LabelIBANAuftraggeber       = "IBAN Auftraggeber"
	LabelIBANZahlungsempfaenger = "IBAN Zahlungsempfänger"
	LabelIBANEmpfaenger         = "IBAN Empfänger"
	LabelVerwendungszweck       = "Verwendungszweck"
	LabelZahlungsreferenz       = "Zahlungsreferenz"
	LabelAuftraggeberreferenz   = "Auftraggeberreferenz"
	LabelEmpfaengerKennung      = "Empfänger-Kennung"
	LabelMandat                 = "Mandat"
)

var memoLabels = []string{
	LabelAuftraggeber,
	LabelZahlungsempfaenger,
	LabelEmpfaenger,
	LabelBICAuftraggeber,
	LabelBICZahlungsempfaenger,
	LabelBICEmpfaenger,
	LabelIBANAuftraggeber,
	LabelIBANZahlungsempfaenger,
	LabelIBANEmpfaenger,
	LabelVerwendungszweck,
	LabelZahlungsreferenz,
	LabelAuftraggeberreferenz,
	LabelEmpfaengerKennung,
	LabelMandat,
}

// labelPattern matches any label followed by ": ". Longer labels are tried
// first so that "Auftraggeberreferenz" is not read as "Auftraggeber".
var labelPattern = compileLabelPattern(memoLabels)

// boilerplate is erased from the text before the first label.
var boilerplate = []*regexp.Regexp{
	regexp.MustCompile(`INTERNET-Überweisung`),
	regexp.MustCompile(`ONLINE BANKING VOM \d{2}.\d{2} UM \d{2}:\d{2}`),
	regexp.MustCompile(`KONFORM \d+UEB\d+`),
}

func compileLabelPattern(labels []string) *regexp.Regexp {
	sorted := append([]string(nil), labels...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, l := range sorted {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return regexp.MustCompile(`(` + strings.Join(quoted, "|") + `): `)
}

// Target is a transaction attribute a memo label can fill.
type Target int

const (
	TargetPayee Target = iota
	TargetBankID
	TargetAccountID
	TargetCheckNo
	TargetMemo
)

// promotionRule maps a label onto a target. For each target the present label
// with the lowest rank wins.
type promotionRule struct {
	label  string
	target Target
	rank   int
}

var promotionRules = []promotionRule{
	{LabelAuftraggeber, TargetPayee, 0},
	{LabelZahlungsempfaenger, TargetPayee, 1},
	{LabelEmpfaenger, TargetPayee, 2},
	{LabelBICAuftraggeber, TargetBankID, 0},
	{LabelBICZahlungsempfaenger, TargetBankID, 1},
	{LabelBICEmpfaenger, TargetBankID, 2},
	{LabelIBANAuftraggeber, TargetAccountID, 0},
	{LabelIBANZahlungsempfaenger, TargetAccountID, 1},
	{LabelIBANEmpfaenger, TargetAccountID, 2},
	{LabelAuftraggeberreferenz, TargetCheckNo, 0},
	{LabelVerwendungszweck, TargetMemo, 0},
	{LabelZahlungsreferenz, TargetMemo, 1},
}

// MemoParts maps each label found in a memo to its text. The text in front of
// the first label is stored under LabelEmpfaenger.
type MemoParts map[string]string

// MemoFields are the transaction attributes promoted from a memo.
type MemoFields struct {
	Payee     string
	BankID    string
	AccountID string
	CheckNo   string
	Memo      string
}

// DecomposeMemo splits memo on the known labels. A label that occurs more than
// once collects all its values, space separated.
func DecomposeMemo(memo string) MemoParts {
	matches := labelPattern.FindAllStringSubmatchIndex(memo, -1)

	head := memo
	if len(matches) > 0 {
		head = memo[:matches[0][0]]
	}
	parts := MemoParts{LabelEmpfaenger: cleanHead(head)}

	for i, m := range matches {
		end := len(memo)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		parts.add(memo[m[2]:m[3]], memo[m[1]:end])
	}
	return parts
}

func cleanHead(head string) string {
	for _, re := range boilerplate {
		head = re.ReplaceAllString(head, "")
	}
	return textutils.CollapseWhitespace(head)
}

func (p MemoParts) add(label, value string) {
	if prev, ok := p[label]; ok {
		p[label] = strings.TrimSpace(prev + " " + value)
		return
	}
	p[label] = strings.TrimSpace(value)
}

// Resolve applies the promotion rules. Without Verwendungszweck or
// Zahlungsreferenz the memo is fallbackMemo.
func (p MemoParts) Resolve(fallbackMemo string) MemoFields {
	values := make(map[Target]string)
	ranks := make(map[Target]int)
	for _, rule := range promotionRules {
		v, ok := p[rule.label]
		if !ok {
			continue
		}
		if r, seen := ranks[rule.target]; seen && r <= rule.rank {
			continue
		}
		values[rule.target] = v
		ranks[rule.target] = rule.rank
	}

	fields := MemoFields{
		Payee:     values[TargetPayee],
		BankID:    values[TargetBankID],
		AccountID: values[TargetAccountID],
		CheckNo:   values[TargetCheckNo],
		Memo:      fallbackMemo,
	}
	if memo, ok := values[TargetMemo]; ok {
		fields.Memo = memo
	}
	return fields
}
