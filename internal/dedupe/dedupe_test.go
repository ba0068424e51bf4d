package dedupe

import (
	"strings"
	"testing"

	"github.com/ledgerflow/statement-engine/internal/models"
)

func TestFingerprintTruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 80)
	short := long[:50]
	if Fingerprint("2024-01-15", 100, long) != Fingerprint("2024-01-15", 100, short) {
		t.Error("fingerprints should agree on the first 50 description characters")
	}
	if Fingerprint("2024-01-15", 100, "a"+long) == Fingerprint("2024-01-15", 100, long) {
		t.Error("different prefixes must fingerprint differently")
	}
}

func TestMarkDuplicates(t *testing.T) {
	candidates := []models.CandidateTransaction{
		{Date: "2024-01-15", Amount: 5000, Description: "Salary Payment"},
		{Date: "2024-01-16", Amount: 200, Description: "POS MTN Airtime"},
	}

	// Empty ledger: nothing flagged
	if n := MarkDuplicates(candidates, nil); n != 0 {
		t.Fatalf("flagged %d against an empty ledger", n)
	}

	// Add an exact match for the first candidate: it and only it flips
	existing := []models.ExistingTransaction{
		{Date: "2024-01-15", Amount: 5000, Description: "Salary Payment"},
	}
	if n := MarkDuplicates(candidates, existing); n != 1 {
		t.Fatalf("flagged %d, want 1", n)
	}
	if !candidates[0].IsDuplicate {
		t.Error("matching candidate not flagged")
	}
	if candidates[1].IsDuplicate {
		t.Error("non-matching candidate flagged")
	}
}

// Matching is exact: a one-character description difference, a different
// amount, or a different date is a distinct transaction.
func TestMarkDuplicatesExactness(t *testing.T) {
	base := models.CandidateTransaction{Date: "2024-01-15", Amount: 5000, Description: "Salary Payment"}

	tests := []struct {
		name     string
		existing models.ExistingTransaction
	}{
		{"description differs", models.ExistingTransaction{Date: "2024-01-15", Amount: 5000, Description: "Salary payment"}},
		{"amount differs", models.ExistingTransaction{Date: "2024-01-15", Amount: 5000.01, Description: "Salary Payment"}},
		{"date differs", models.ExistingTransaction{Date: "2024-01-16", Amount: 5000, Description: "Salary Payment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := []models.CandidateTransaction{base}
			if n := MarkDuplicates(candidates, []models.ExistingTransaction{tt.existing}); n != 0 {
				t.Errorf("near-miss was flagged as a duplicate")
			}
		})
	}
}

// Only the first 50 characters of the description participate, so entries
// differing beyond that point still match.
func TestMarkDuplicatesLongDescriptions(t *testing.T) {
	prefix := strings.Repeat("y", 50)
	candidates := []models.CandidateTransaction{
		{Date: "2024-01-15", Amount: 100, Description: prefix + " candidate tail"},
	}
	existing := []models.ExistingTransaction{
		{Date: "2024-01-15", Amount: 100, Description: prefix + " completely different tail"},
	}
	if n := MarkDuplicates(candidates, existing); n != 1 {
		t.Errorf("flagged %d, want 1 (tails beyond 50 chars are ignored)", n)
	}
}
