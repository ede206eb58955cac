// internal/repository/memory/account_mem.go
package memory

import (
	"context"
	"sync"

	"branch-ledger/internal/domain"
	"branch-ledger/internal/repository"
	"branch-ledger/internal/util"
)

// AccountRepository implements repository.AccountRepository in memory.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.Account
}

// NewAccountRepository creates a new, empty AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return &AccountRepository{}
}

// CreateAccount assigns the next account number to account and stores a copy.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.Number = len(r.accounts) + 1
	r.accounts = append(r.accounts, *account)
	return nil
}

// GetAccountByNumber retrieves an account by its number.
func (r *AccountRepository) GetAccountByNumber(ctx context.Context, number int) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Numbers are dense and start at 1.
	if number < 1 || number > len(r.accounts) {
		return nil, util.ErrNotFound
	}
	cp := r.accounts[number-1]
	return &cp, nil
}

// ListAccounts returns a copy of every account in creation order.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}
