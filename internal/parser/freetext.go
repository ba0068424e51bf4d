package parser

import (
	"strings"

	"github.com/ledgerflow/statement-engine/internal/categorize"
	"github.com/ledgerflow/statement-engine/internal/models"
	"github.com/ledgerflow/statement-engine/internal/normalize"
)

// FreeTextStrategy is the last-resort parser for newline-delimited text with
// no known structure. Each line is scanned for any recognized date shape and
// every amount-shaped token; the first date and the largest amount win.
//
// The largest-amount rule assumes balances and reference numbers are smaller
// than the transaction amount. Lines carrying a larger decimal-formatted
// reference number will misfire; that limitation is accepted rather than
// guessed around.
type FreeTextStrategy struct{}

func (FreeTextStrategy) Name() string { return "freetext" }

func (FreeTextStrategy) Parse(text string) []models.CandidateTransaction {
	var out []models.CandidateTransaction

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if txn, ok := parseFreeLine(line); ok {
			out = append(out, txn)
		}
	}
	return out
}

func parseFreeLine(line string) (models.CandidateTransaction, bool) {
	var txn models.CandidateTransaction

	dateRaw, hasDate := normalize.FindDate(line)
	scanLine := line
	if hasDate {
		// Keep the date's digits out of the amount scan.
		scanLine = strings.Replace(line, dateRaw, " ", 1)
	}

	amt := normalize.LargestAmount(scanLine)
	if amt == 0 {
		return txn, false
	}
	txn.Amount = amt

	// A dateless line is still emitted here, stamped with today. The table
	// and wallet parsers drop such lines; free text is the fallback path
	// and prefers a degraded date over losing the transaction.
	txn.Date = normalize.Date(dateRaw)

	txn.Direction = normalize.Direction(line)
	txn.Description = cleanDescription(stripFragments(scanLine))
	txn.Category = categorize.Guess(txn.Description, txn.Direction)
	return txn, true
}

// stripFragments removes amount tokens and CR/DR-suffixed amounts so the
// description carries only the narrative part of the line.
func stripFragments(line string) string {
	line = normalize.StripAmountSuffix(line)
	for _, tok := range normalize.FindAmounts(line) {
		line = strings.Replace(line, tok, " ", 1)
	}
	return line
}
