// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"branch-ledger/internal/domain"
)

// TransactionRepository defines the interface for the append-only ledger.
type TransactionRepository interface {
	// CreateTransaction appends an entry. Entries are never updated or removed.
	CreateTransaction(ctx context.Context, entry *domain.LedgerEntry) error
	// GetTransactionsByAccount returns an account's entries in insertion order.
	GetTransactionsByAccount(ctx context.Context, accountNumber int) ([]domain.LedgerEntry, error)
}
