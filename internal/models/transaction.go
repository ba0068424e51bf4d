package models

// Direction says which way money moved.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Transaction categories form a closed vocabulary. Every candidate gets
// exactly one of these; parsers never invent new ones.
const (
	CategoryIncome        = "Income"
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryRentBills     = "Rent/Bills"
	CategoryShopping      = "Shopping"
	CategoryHealth        = "Health"
	CategoryEducation     = "Education"
	CategorySavings       = "Savings"
	CategoryCash          = "Cash"
	CategoryTransfer      = "Transfer"
	CategoryOther         = "Other"
)

// AllCategories returns every valid category value.
func AllCategories() []string {
	return []string{
		CategoryIncome,
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryRentBills,
		CategoryShopping,
		CategoryHealth,
		CategoryEducation,
		CategorySavings,
		CategoryCash,
		CategoryTransfer,
		CategoryOther,
	}
}

// CandidateTransaction is a parsed, not-yet-confirmed transaction awaiting
// human review. Date is always canonical YYYY-MM-DD, Amount is always a
// positive magnitude, and Direction/Category are always set.
type CandidateTransaction struct {
	Date        string    `json:"date"`
	Amount      float64   `json:"amount"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	IsDuplicate bool      `json:"is_duplicate"`
}

// ExistingTransaction is the read-only shape the ledger lookup returns for
// duplicate detection. Never mutated by this engine.
type ExistingTransaction struct {
	Date        string
	Amount      float64
	Description string
}

// ParseResult is the engine's output for one upload.
type ParseResult struct {
	UploadID       string                 `json:"upload_id"`
	Transactions   []CandidateTransaction `json:"transactions"`
	TotalCount     int                    `json:"total_count"`
	DuplicateCount int                    `json:"duplicate_count"`
	IncomeTotal    float64                `json:"income_total"`
	ExpenseTotal   float64                `json:"expense_total"`
	Message        string                 `json:"message,omitempty"`
}
