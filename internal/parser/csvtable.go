package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/ledgerflow/statement-engine/internal/categorize"
	"github.com/ledgerflow/statement-engine/internal/models"
	"github.com/ledgerflow/statement-engine/internal/normalize"
)

// TableStrategy parses comma-delimited exports with a header row. Columns
// are located by fuzzy header-name matching because no two banks agree on
// what to call anything.
type TableStrategy struct{}

func (TableStrategy) Name() string { return "table" }

// columns holds resolved column indexes; -1 means the column is absent.
type columns struct {
	date   int
	desc   int
	amount int
	credit int
	debit  int
	typ    int
}

// headerNeedles maps each logical column to the substrings that identify it
// in a header cell.
var (
	dateNeedles   = []string{"date", "trans", "value"}
	descNeedles   = []string{"desc", "narration", "details", "particular"}
	amountNeedles = []string{"amount"}
	typeNeedles   = []string{"type", "dr/cr", "cr/dr"}
)

func (TableStrategy) Parse(text string) []models.CandidateTransaction {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil
	}
	cols, ok := resolveColumns(header)
	if !ok {
		return nil
	}

	var out []models.CandidateTransaction
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip it, never fail the parse.
			continue
		}
		if txn, ok := parseRow(row, cols); ok {
			out = append(out, txn)
		}
	}
	return out
}

// resolveColumns maps header cells to logical columns. A date column is the
// minimum a table needs; without one this is not a statement table.
func resolveColumns(header []string) (columns, bool) {
	cols := columns{date: -1, desc: -1, amount: -1, credit: -1, debit: -1, typ: -1}

	for i, cell := range header {
		lower := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case cols.credit < 0 && strings.Contains(lower, "credit"):
			cols.credit = i
		case cols.debit < 0 && strings.Contains(lower, "debit"):
			cols.debit = i
		case cols.desc < 0 && containsAny(lower, descNeedles):
			cols.desc = i
		// Type before date: a "Transaction Type" header must not be
		// claimed by the "trans" date needle.
		case cols.typ < 0 && containsAny(lower, typeNeedles):
			cols.typ = i
		case cols.date < 0 && containsAny(lower, dateNeedles):
			cols.date = i
		case cols.amount < 0 && containsAny(lower, amountNeedles):
			cols.amount = i
		}
	}

	if cols.date < 0 {
		return cols, false
	}
	hasPair := cols.credit >= 0 && cols.debit >= 0
	if !hasPair && cols.amount < 0 {
		return cols, false
	}
	return cols, true
}

func parseRow(row []string, cols columns) (models.CandidateTransaction, bool) {
	var txn models.CandidateTransaction

	dateRaw := cell(row, cols.date)
	if dateRaw == "" {
		return txn, false
	}
	txn.Date = normalize.Date(dateRaw)

	if cols.credit >= 0 && cols.debit >= 0 {
		// Paired columns: whichever side is non-zero wins.
		if amt := normalize.Amount(cell(row, cols.credit)); amt > 0 {
			txn.Amount = amt
			txn.Direction = models.DirectionIncome
		} else if amt := normalize.Amount(cell(row, cols.debit)); amt > 0 {
			txn.Amount = amt
			txn.Direction = models.DirectionExpense
		} else {
			return txn, false
		}
	} else {
		amt := normalize.Amount(cell(row, cols.amount))
		if amt == 0 {
			return txn, false
		}
		txn.Amount = amt
		txn.Direction = rowDirection(row, cols)
	}

	txn.Description = cleanDescription(cell(row, cols.desc))
	txn.Category = categorize.Guess(txn.Description, txn.Direction)
	return txn, true
}

// rowDirection resolves direction for a single-amount-column row: the
// explicit type column wins when present, otherwise the keyword heuristic
// runs over the whole row.
func rowDirection(row []string, cols columns) models.Direction {
	if t := strings.ToLower(cell(row, cols.typ)); t != "" {
		if strings.Contains(t, "cr") || strings.Contains(t, "in") {
			return models.DirectionIncome
		}
		if strings.Contains(t, "dr") || strings.Contains(t, "deb") || strings.Contains(t, "out") {
			return models.DirectionExpense
		}
	}
	return normalize.Direction(strings.Join(row, " "))
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
