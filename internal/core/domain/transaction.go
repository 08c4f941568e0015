package domain

import "github.com/shopspring/decimal"

// TransactionType distinguishes income from expense entries.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction is one entry of the append-only ledger. Transactions are never
// edited, only appended or removed; the balance is always a derived sum.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	AuditFields
}

// TransactionSummary holds the derived totals over a user's ledger.
type TransactionSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// Summarize derives totals from a list of transactions. The balance is
// income minus expense and is never stored.
func Summarize(txns []Transaction) TransactionSummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case Income:
			income = income.Add(txn.Amount)
		case Expense:
			expense = expense.Add(txn.Amount)
		}
	}
	return TransactionSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}
