package dto

import (
	"time"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for appending a ledger entry.
type CreateTransactionRequest struct {
	Name   string                 `json:"name" binding:"required,max=128"`
	Amount decimal.Decimal        `json:"amount" binding:"required"`
	Type   domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
}

// TransactionResponse is the API representation of a ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Name          string                 `json:"name"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ListTransactionsResponse wraps the user's ledger.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionSummaryResponse carries the derived totals over the ledger.
type TransactionSummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// CategoriesResponse lists the suggested category names per transaction type.
type CategoriesResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Name:          txn.Name,
		Amount:        txn.Amount,
		Type:          txn.Type,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a slice of transactions to its DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: out}
}

// ToTransactionSummaryResponse converts a domain summary to its DTO.
func ToTransactionSummaryResponse(s domain.TransactionSummary) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Balance:      s.Balance,
	}
}
