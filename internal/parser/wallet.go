package parser

import (
	"regexp"
	"strings"

	"github.com/ledgerflow/statement-engine/internal/categorize"
	"github.com/ledgerflow/statement-engine/internal/models"
	"github.com/ledgerflow/statement-engine/internal/normalize"
)

// WalletStrategy handles mobile-money wallet statements. These arrive as
// text or PDF exports with one transaction per line in roughly this shape:
//
//	15/01/2024 10:32:01  Transfer to ADEBAYO K  REF2024011512345  2,000.00 DR  Successful
//
// Amounts carrying an explicit CR/DR suffix are authoritative; otherwise the
// last amount-shaped token on the line is taken with keyword-based
// direction.
type WalletStrategy struct{}

func (WalletStrategy) Name() string { return "wallet" }

// walletSkipMarkers identify boilerplate, header and summary lines that must
// never become transactions.
var walletSkipMarkers = []string{
	"opening balance", "closing balance", "total credit", "total debit",
	"statement period", "wallet statement", "account statement",
	"account name", "account number", "transaction history",
	"generated on", "page ", "balance brought forward",
}

// walletSniffMarkers are the subset distinctive enough to route an unknown
// upload to this parser in the first place.
var walletSniffMarkers = []string{
	"wallet statement", "opening balance", "total credit", "total debit",
}

// LooksLikeWallet reports whether decoded text resembles a wallet statement.
func LooksLikeWallet(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range walletSniffMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

var (
	timeOfDay  = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`)
	statusWord = regexp.MustCompile(`(?i)\b(Successful|Failed|Pending|Reversed)\b`)
	hasDigit   = regexp.MustCompile(`\d`)
	alnumToken = regexp.MustCompile(`^[A-Za-z0-9]{12,}$`)
)

func (WalletStrategy) Parse(text string) []models.CandidateTransaction {
	var out []models.CandidateTransaction

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isWalletBoilerplate(line) {
			continue
		}
		if txn, ok := parseWalletLine(line); ok {
			out = append(out, txn)
		}
	}
	return out
}

func isWalletBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range walletSkipMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	// Column header row, e.g. "Date  Time  Description  Amount  Status".
	if strings.Contains(lower, "date") &&
		(strings.Contains(lower, "description") || strings.Contains(lower, "amount") ||
			strings.Contains(lower, "narration")) {
		return true
	}
	return false
}

func parseWalletLine(line string) (models.CandidateTransaction, bool) {
	var txn models.CandidateTransaction

	// This parser requires a real date on the line; dateless lines are
	// dropped rather than stamped with today.
	dateRaw, ok := normalize.FindNumericDate(line)
	if !ok {
		return txn, false
	}
	txn.Date = normalize.Date(dateRaw)

	if amt, dir, ok := normalize.AmountWithSuffix(line); ok && amt > 0 {
		txn.Amount = amt
		txn.Direction = dir
	} else {
		// No suffix marker: take the last amount-shaped token and let the
		// keyword heuristic call the direction.
		amounts := normalize.FindAmounts(line)
		if len(amounts) == 0 {
			return txn, false
		}
		amt := normalize.Amount(amounts[len(amounts)-1])
		if amt == 0 {
			return txn, false
		}
		txn.Amount = amt
		txn.Direction = normalize.Direction(line)
	}

	txn.Description = cleanDescription(stripWalletFragments(line, dateRaw))
	txn.Category = categorize.Guess(txn.Description, txn.Direction)
	return txn, true
}

// stripWalletFragments removes the date, time, amounts, status words and
// long reference codes so only the narrative remains.
func stripWalletFragments(line, dateRaw string) string {
	line = strings.Replace(line, dateRaw, " ", 1)
	line = timeOfDay.ReplaceAllString(line, " ")
	line = normalize.StripAmountSuffix(line)
	for _, tok := range normalize.FindAmounts(line) {
		line = strings.Replace(line, tok, " ", 1)
	}
	line = statusWord.ReplaceAllString(line, " ")
	return stripReferences(line)
}

// stripReferences drops long alphanumeric tokens that contain at least one
// digit — transaction reference codes. The digit requirement keeps ordinary
// long words like "Subscription" intact.
func stripReferences(line string) string {
	fields := strings.Fields(line)
	kept := fields[:0]
	for _, f := range fields {
		if alnumToken.MatchString(f) && hasDigit.MatchString(f) {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
