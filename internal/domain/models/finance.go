package models

// Transaction is a single income or expense entry. Date uses the
// "YYYY/MM/DD" display format; monthly and yearly rollups filter on its
// string prefix.
type Transaction struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Amount   int64  `json:"amount"`
	Type     string `json:"type"` // "income" or "expense"
	Date     string `json:"date"`
	Category string `json:"category"`
}

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// MonthSummary holds the totals for one month.
type MonthSummary struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}
