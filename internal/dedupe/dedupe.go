// Package dedupe flags candidate transactions that already exist in the
// user's ledger for the same account.
package dedupe

import (
	"fmt"

	"github.com/ledgerflow/statement-engine/internal/models"
)

// fingerprintDescLen bounds how much of the description participates in the
// fingerprint.
const fingerprintDescLen = 50

// Fingerprint builds the composite key used for duplicate comparison.
// Equality is exact: no fuzzy matching, no tolerance window. Two entries
// differing by one character in the first 50 description characters are
// distinct — missed duplicates are preferred over hiding real transactions.
func Fingerprint(date string, amount float64, description string) string {
	if len(description) > fingerprintDescLen {
		description = description[:fingerprintDescLen]
	}
	return fmt.Sprintf("%s|%.2f|%s", date, amount, description)
}

// MarkDuplicates sets IsDuplicate on every candidate whose fingerprint
// appears in the existing set, and returns how many were flagged. Existing
// entries are never mutated.
func MarkDuplicates(candidates []models.CandidateTransaction, existing []models.ExistingTransaction) int {
	if len(candidates) == 0 || len(existing) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[Fingerprint(e.Date, e.Amount, e.Description)] = struct{}{}
	}

	count := 0
	for i := range candidates {
		c := &candidates[i]
		if _, ok := seen[Fingerprint(c.Date, c.Amount, c.Description)]; ok {
			c.IsDuplicate = true
			count++
		}
	}
	return count
}
