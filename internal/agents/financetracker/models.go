// internal/agents/financetracker/models.go
package financetracker

import "agent-demos/internal/common/simulator"

type Input struct {
	ExpensesInput string `json:"expensesInput"`
}

type Output struct {
	TotalSpend        float64            `json:"totalSpend"`
	Currency          string             `json:"currency"`
	CategoryBreakdown []CategoryAmount   `json:"categoryBreakdown"`
	Expenses          []Expense          `json:"expenses"`
	UnparsedLines     []string           `json:"unparsedLines"`
	TopCategory       string             `json:"topCategory"`
	SavingsTip        string             `json:"savingsTip"`
	Metadata          simulator.Metadata `json:"metadata"`
}

type CategoryAmount struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type Expense struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// Categories
const (
	CategoryFood          = "Food & Drinks"
	CategoryTransport     = "Transportation"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills & Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryMisc          = "Miscellaneous"
)

type classification struct {
	Expenses []Expense
	Unparsed []string
}
