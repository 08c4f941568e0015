package services

import (
	"context"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
)

// TransactionReaderSvc defines read operations over the ledger.
type TransactionReaderSvc interface {
	// ListTransactions returns the user's ledger in insertion order.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// Summary derives the income/expense/balance totals. Never stored.
	Summary(ctx context.Context, userID string) (domain.TransactionSummary, error)

	// Categories returns the suggested category names per type.
	Categories() (income []string, expense []string)
}

// TransactionWriterSvc defines the append/remove operations over the ledger.
type TransactionWriterSvc interface {
	// AddTransaction appends a ledger entry. Amount must be positive.
	AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// RemoveTransaction removes an entry by ID.
	RemoveTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
