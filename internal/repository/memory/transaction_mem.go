// internal/repository/memory/transaction_mem.go
package memory

import (
	"context"
	"sync"

	"branch-ledger/internal/domain"
	"branch-ledger/internal/repository"
)

// TransactionRepository implements repository.TransactionRepository in memory.
type TransactionRepository struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

// NewTransactionRepository creates a new, empty TransactionRepository.
func NewTransactionRepository() repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction appends a copy of entry to the ledger.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, entry *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *entry)
	return nil
}

// GetTransactionsByAccount returns the account's entries in insertion order.
func (r *TransactionRepository) GetTransactionsByAccount(ctx context.Context, accountNumber int) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.LedgerEntry{}
	for _, e := range r.entries {
		if e.AccountNumber == accountNumber {
			out = append(out, e)
		}
	}
	return out, nil
}
