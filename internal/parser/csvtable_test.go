package parser

import (
	"testing"

	"github.com/ledgerflow/statement-engine/internal/models"
)

func TestTableCreditDebitColumns(t *testing.T) {
	input := "Date,Description,Debit,Credit\n" +
		"2024-01-15,Salary Payment,,5000.00\n" +
		"2024-01-16,POS MTN Airtime,200.00,"

	txns := TableStrategy{}.Parse(input)
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txns))
	}

	got := txns[0]
	if got.Date != "2024-01-15" || got.Amount != 5000 ||
		got.Direction != models.DirectionIncome || got.Category != models.CategoryIncome {
		t.Errorf("txn[0] = %+v", got)
	}

	got = txns[1]
	if got.Date != "2024-01-16" || got.Amount != 200 ||
		got.Direction != models.DirectionExpense || got.Category != models.CategoryUtilities {
		t.Errorf("txn[1] = %+v", got)
	}
}

func TestTableAmountAndTypeColumns(t *testing.T) {
	input := "Trans Date,Narration,Amount,Type\n" +
		"15/01/2024,NIP transfer in,5000.00,CR\n" +
		"16/01/2024,POS SHOPRITE,1500.00,DR"

	txns := TableStrategy{}.Parse(input)
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txns))
	}
	if txns[0].Direction != models.DirectionIncome {
		t.Errorf("txn[0].Direction = %q, want income", txns[0].Direction)
	}
	if txns[0].Date != "2024-01-15" {
		t.Errorf("txn[0].Date = %q, want 2024-01-15", txns[0].Date)
	}
	if txns[1].Direction != models.DirectionExpense {
		t.Errorf("txn[1].Direction = %q, want expense", txns[1].Direction)
	}
}

func TestTableAmountWithDescriptionHeuristic(t *testing.T) {
	// No type column: direction comes from the keyword heuristic
	input := "Date,Details,Amount\n" +
		"2024-02-01,Salary for January,250000.00\n" +
		"2024-02-02,POS SHOPRITE,12500.00"

	txns := TableStrategy{}.Parse(input)
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txns))
	}
	if txns[0].Direction != models.DirectionIncome {
		t.Errorf("salary row classified as %q", txns[0].Direction)
	}
	if txns[1].Direction != models.DirectionExpense {
		t.Errorf("POS row classified as %q", txns[1].Direction)
	}
}

func TestTableSkipsBadRows(t *testing.T) {
	input := "Date,Description,Debit,Credit\n" +
		",Missing date,100.00,\n" + // no date: dropped
		"2024-01-20,Zero amount,,0.00\n" + // zero amount: dropped
		"2024-01-21,Good row,250.00,\n" +
		"not,even,close,to,a,valid,row,extra,cols\n" + // still parses as CSV but has no usable date
		"2024-01-22,Another good row,,1000.00"

	txns := TableStrategy{}.Parse(input)
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2: %+v", len(txns), txns)
	}
	for _, txn := range txns {
		if txn.Amount <= 0 {
			t.Errorf("emitted non-positive amount: %+v", txn)
		}
	}
}

func TestTableRejectsHeaderlessText(t *testing.T) {
	if txns := (TableStrategy{}).Parse("just a line of prose\nand another"); txns != nil {
		t.Errorf("expected nil for non-tabular text, got %+v", txns)
	}
	if txns := (TableStrategy{}).Parse(""); txns != nil {
		t.Errorf("expected nil for empty input, got %+v", txns)
	}
}
