package models

import "github.com/shopspring/decimal"

// Transaction is the database row shape for one ledger entry.
type Transaction struct {
	TransactionID string
	UserID        string
	Name          string
	Amount        decimal.Decimal
	Type          string
	AuditFields
}
