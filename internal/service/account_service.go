// internal/service/account_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"branch-ledger/internal/domain"
	"branch-ledger/internal/repository"
	"branch-ledger/internal/util"
)

// AccountService defines the account registry.
type AccountService interface {
	OpenAccount(ctx context.Context, ownerTaxID string) (*domain.Account, error)
	GetAccount(ctx context.Context, number int) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

type accountService struct {
	users       UserService
	accountRepo repository.AccountRepository
	branchCode  string
	logger      *slog.Logger
}

// NewAccountService creates a new instance of AccountService. Every account
// it opens belongs to branchCode.
func NewAccountService(users UserService, accountRepo repository.AccountRepository, branchCode string, logger *slog.Logger) AccountService {
	return &accountService{
		users:       users,
		accountRepo: accountRepo,
		branchCode:  branchCode,
		logger:      logger,
	}
}

// OpenAccount opens an account for an already registered user. When the user
// does not exist nothing is created and util.ErrUserNotFound is returned.
func (s *accountService) OpenAccount(ctx context.Context, ownerTaxID string) (*domain.Account, error) {
	owner, err := s.users.FindUser(ctx, ownerTaxID)
	if err != nil {
		return nil, err
	}

	account := domain.NewAccount(s.branchCode, *owner)
	if err := s.accountRepo.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("open account: failed to create account: %w", err)
	}

	s.logger.InfoContext(ctx, "Account created",
		"branch_code", account.BranchCode,
		"account_number", account.Number,
		"tax_id", owner.TaxID,
	)
	return account, nil
}

func (s *accountService) GetAccount(ctx context.Context, number int) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccountByNumber(ctx, number)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account %d: %w", number, err)
	}
	return account, nil
}

// ListAccounts returns all accounts ordered by creation.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}
