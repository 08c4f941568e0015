package repositories

import (
	"context"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

// TransactionReader defines read operations for the transaction ledger.
type TransactionReader interface {
	// ListTransactions returns the user's transactions in insertion order.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the transaction ledger.
// The ledger is append-only: entries are never edited in place.
type TransactionWriter interface {
	// SaveTransaction appends a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction by ID, scoped to the user.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
