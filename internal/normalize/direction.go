package normalize

import (
	"regexp"
	"strings"

	"github.com/ledgerflow/statement-engine/internal/models"
)

// amountSuffix matches an amount immediately followed by a CR or DR marker,
// the shorthand most statement lines use. When present it is authoritative
// and overrides every keyword heuristic.
var amountSuffix = regexp.MustCompile(`(?i)((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{1,2})?)\s*(CR|DR)\b`)

// creditWord matches single-token credit indicators on word boundaries.
// Bare substring matching would fire on words like "across" or "crown".
var creditWord = regexp.MustCompile(`(?i)\b(credit|cr|deposit|inflow|received|incoming|refund|salary|wage|wages|bonus|inward)\b`)

// Multi-word credit phrases checked as plain substrings.
var creditPhrases = []string{"transfer from", "from "}

// debitKeywords documents the debit vocabulary for reference. Classification
// does not consult it: anything that is not recognizably a credit defaults
// to expense, which covers these terms anyway.
var debitKeywords = []string{
	"debit", "dr", "withdrawal", "purchase", "pos", "payment to",
	"transfer to", "charge", "fee", "outward",
}

// Direction classifies a statement line (or trailing token) as income or
// expense. Decision order: explicit CR/DR suffix, then credit keywords,
// then default expense. There is no unknown state.
func Direction(text string) models.Direction {
	if m := amountSuffix.FindStringSubmatch(text); m != nil {
		if strings.EqualFold(m[2], "CR") {
			return models.DirectionIncome
		}
		return models.DirectionExpense
	}

	lower := strings.ToLower(text)
	if creditWord.MatchString(lower) {
		return models.DirectionIncome
	}
	for _, phrase := range creditPhrases {
		if strings.Contains(lower, phrase) {
			return models.DirectionIncome
		}
	}

	return models.DirectionExpense
}

// AmountWithSuffix extracts an amount that carries an explicit CR/DR marker.
// Returns the magnitude, the direction it implies, and whether the pattern
// was present at all.
func AmountWithSuffix(line string) (float64, models.Direction, bool) {
	m := amountSuffix.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	dir := models.DirectionExpense
	if strings.EqualFold(m[2], "CR") {
		dir = models.DirectionIncome
	}
	return Amount(m[1]), dir, true
}

// StripAmountSuffix removes every amount+CR/DR fragment from a line, for
// description building.
func StripAmountSuffix(line string) string {
	return amountSuffix.ReplaceAllString(line, " ")
}
