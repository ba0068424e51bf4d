package normalize

import (
	"testing"

	"github.com/ledgerflow/statement-engine/internal/models"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Direction
	}{
		// Explicit CR/DR suffix after an amount is authoritative
		{"cr suffix", "Transfer from John 5000.00 CR", models.DirectionIncome},
		{"dr suffix", "POS PURCHASE SHOPRITE 2,000.00 DR", models.DirectionExpense},
		{"lowercase suffix", "airtime 200.00 dr", models.DirectionExpense},
		// Suffix wins over keywords: "salary" would say income
		{"suffix beats keywords", "Salary reversal 5000.00 DR", models.DirectionExpense},
		// Credit keywords
		{"salary", "GTB SALARY MARCH", models.DirectionIncome},
		{"refund", "JUMIA ORDER REFUND", models.DirectionIncome},
		{"transfer from", "Transfer from ADA OBI", models.DirectionIncome},
		{"received", "NIP received 104553", models.DirectionIncome},
		// Word-boundary matching: "cr" inside a word is not a credit
		{"cr inside word", "crown interactive ltd", models.DirectionExpense},
		// Default is expense
		{"plain purchase", "POS SHOPRITE LEKKI", models.DirectionExpense},
		{"empty", "", models.DirectionExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(tt.text); got != tt.want {
				t.Errorf("Direction(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAmountWithSuffix(t *testing.T) {
	amt, dir, ok := AmountWithSuffix("15/01/2024 Transfer from John 5,000.00 CR Successful")
	if !ok {
		t.Fatal("expected a suffixed amount")
	}
	if amt != 5000 {
		t.Errorf("amount: got %f, want 5000", amt)
	}
	if dir != models.DirectionIncome {
		t.Errorf("direction: got %q, want income", dir)
	}

	if _, _, ok := AmountWithSuffix("no suffix here 200.00"); ok {
		t.Error("matched a line without a CR/DR marker")
	}
}
