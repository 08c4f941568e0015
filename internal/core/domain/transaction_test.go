package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, domain.Income.IsValid())
	assert.True(t, domain.Expense.IsValid())
	assert.False(t, domain.TransactionType("TRANSFER").IsValid())
	assert.False(t, domain.TransactionType("").IsValid())
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		txns        []domain.Transaction
		wantIncome  string
		wantExpense string
		wantBalance string
	}{
		{
			name:        "empty ledger",
			txns:        nil,
			wantIncome:  "0",
			wantExpense: "0",
			wantBalance: "0",
		},
		{
			name: "mixed entries",
			txns: []domain.Transaction{
				{Type: domain.Income, Amount: decimal.NewFromInt(1500)},
				{Type: domain.Income, Amount: decimal.NewFromFloat(250.50)},
				{Type: domain.Expense, Amount: decimal.NewFromInt(800)},
				{Type: domain.Expense, Amount: decimal.NewFromFloat(99.99)},
			},
			wantIncome:  "1750.5",
			wantExpense: "899.99",
			wantBalance: "850.51",
		},
		{
			name: "expenses exceed income",
			txns: []domain.Transaction{
				{Type: domain.Income, Amount: decimal.NewFromInt(100)},
				{Type: domain.Expense, Amount: decimal.NewFromInt(300)},
			},
			wantIncome:  "100",
			wantExpense: "300",
			wantBalance: "-200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Summarize(tt.txns)
			assert.Equal(t, tt.wantIncome, got.TotalIncome.String())
			assert.Equal(t, tt.wantExpense, got.TotalExpense.String())
			assert.Equal(t, tt.wantBalance, got.Balance.String())
		})
	}
}
