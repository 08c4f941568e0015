package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/pocketfin/pocket_finance_app/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
)

// Suggested category names per transaction type.
var (
	incomeCategories  = []string{"Salary", "Freelance", "Investments"}
	expenseCategories = []string{"Food", "Transport", "Shopping", "Rent"}
)

// TransactionService provides business logic for the append-only ledger.
type TransactionService struct {
	repo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) *TransactionService {
	return &TransactionService{repo: repo}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// AddTransaction appends a ledger entry after validating it.
func (s *TransactionService) AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: type must be INCOME or EXPENSE", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		Amount:        req.Amount,
		Type:          req.Type,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.repo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

// RemoveTransaction removes an entry by ID.
func (s *TransactionService) RemoveTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.repo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// ListTransactions returns the user's ledger in insertion order.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// Summary derives the income/expense/balance totals from the ledger.
func (s *TransactionService) Summary(ctx context.Context, userID string) (domain.TransactionSummary, error) {
	txns, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		return domain.TransactionSummary{}, fmt.Errorf("failed to list transactions for summary: %w", err)
	}
	return domain.Summarize(txns), nil
}

// Categories returns the suggested category names per type.
func (s *TransactionService) Categories() (income []string, expense []string) {
	return incomeCategories, expenseCategories
}
