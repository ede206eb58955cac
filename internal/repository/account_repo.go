// internal/repository/account_repo.go
package repository

import (
	"context"

	"branch-ledger/internal/domain"
)

// AccountRepository defines the interface for account data operations.
type AccountRepository interface {
	// CreateAccount stores the account and assigns its number (count of stored accounts + 1).
	CreateAccount(ctx context.Context, account *domain.Account) error
	// GetAccountByNumber retrieves an account by its number, or util.ErrNotFound.
	GetAccountByNumber(ctx context.Context, number int) (*domain.Account, error)
	// ListAccounts returns every account in creation order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
