// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sync"
	"time"

	"branch-ledger/internal/domain"
	"branch-ledger/internal/repository"

	"github.com/shopspring/decimal"
)

// Clock returns the current time. Entry timestamps and the daily window use it.
type Clock func() time.Time

// LedgerService defines the deposit/withdrawal engine and its read views.
type LedgerService interface {
	Deposit(ctx context.Context, accountNumber int, amount decimal.Decimal) (*domain.LedgerEntry, error)
	Withdraw(ctx context.Context, accountNumber int, amount decimal.Decimal) (*domain.LedgerEntry, error)
	AdvanceDay(ctx context.Context, today time.Time)
	State(ctx context.Context, accountNumber int) (domain.AccountState, error)
	FullStatement(ctx context.Context, accountNumber int) (*Statement, error)
	FilterStatement(ctx context.Context, accountNumber int, token string) (iter.Seq[string], error)
	Limits() domain.Limits
}

// accountLedger pairs an account's state with the lock that serializes its
// check-then-mutate sequences.
type accountLedger struct {
	mu    sync.Mutex
	state domain.AccountState
}

type ledgerService struct {
	accounts        AccountService
	transactionRepo repository.TransactionRepository
	limits          domain.Limits
	clock           Clock
	logger          *slog.Logger
	hooks           []TransactionHook

	mu      sync.Mutex // guards ledgers
	ledgers map[int]*accountLedger
}

// NewLedgerService creates a new instance of LedgerService. A nil clock
// means time.Now. hooks run in order after every committed transaction.
func NewLedgerService(
	accounts AccountService,
	transactionRepo repository.TransactionRepository,
	limits domain.Limits,
	clock Clock,
	logger *slog.Logger,
	hooks ...TransactionHook,
) LedgerService {
	if clock == nil {
		clock = time.Now
	}
	return &ledgerService{
		accounts:        accounts,
		transactionRepo: transactionRepo,
		limits:          limits,
		clock:           clock,
		logger:          logger,
		hooks:           hooks,
		ledgers:         make(map[int]*accountLedger),
	}
}

func (s *ledgerService) Limits() domain.Limits {
	return s.limits
}

// Deposit credits amount to the account.
func (s *ledgerService) Deposit(ctx context.Context, accountNumber int, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	return s.commit(ctx, accountNumber, domain.EntryKindDeposit, amount, func(st *domain.AccountState) error {
		return st.ApplyDeposit(amount, s.limits)
	})
}

// Withdraw debits amount from the account.
func (s *ledgerService) Withdraw(ctx context.Context, accountNumber int, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	return s.commit(ctx, accountNumber, domain.EntryKindWithdrawal, amount, func(st *domain.AccountState) error {
		return st.ApplyWithdrawal(amount, s.limits)
	})
}

// commit runs apply against a copy of the account state and only publishes
// the copy once the ledger entry has been appended.
func (s *ledgerService) commit(
	ctx context.Context,
	accountNumber int,
	kind domain.EntryKind,
	amount decimal.Decimal,
	apply func(*domain.AccountState) error,
) (*domain.LedgerEntry, error) {
	l, err := s.ledgerFor(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	now := s.clock()

	l.mu.Lock()
	s.roll(ctx, accountNumber, l, now)

	next := l.state
	if err := apply(&next); err != nil {
		l.mu.Unlock()
		s.logger.DebugContext(ctx, "Transaction rejected",
			"kind", kind, "account_number", accountNumber, "amount", amount.String(), "reason", err)
		return nil, err
	}

	entry := domain.NewLedgerEntry(accountNumber, kind, amount, now)
	if err := s.transactionRepo.CreateTransaction(ctx, entry); err != nil {
		l.mu.Unlock()
		return nil, fmt.Errorf("%s: failed to record transaction: %w", kind, err)
	}
	l.state = next
	l.mu.Unlock()

	for _, hook := range s.hooks {
		hook(ctx, *entry)
	}
	return entry, nil
}

// AdvanceDay moves every tracked account to today, resetting daily counters
// where the day changed.
func (s *ledgerService) AdvanceDay(ctx context.Context, today time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for number, l := range s.ledgers {
		l.mu.Lock()
		s.roll(ctx, number, l, today)
		l.mu.Unlock()
	}
}

// State returns a copy of the account's balance and daily counters.
func (s *ledgerService) State(ctx context.Context, accountNumber int) (domain.AccountState, error) {
	l, err := s.ledgerFor(ctx, accountNumber)
	if err != nil {
		return domain.AccountState{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state, nil
}

// roll must be called with l.mu held.
func (s *ledgerService) roll(ctx context.Context, accountNumber int, l *accountLedger, today time.Time) {
	if l.state.RollIfNewDay(today, s.limits) {
		s.logger.DebugContext(ctx, "Daily counters reset",
			"account_number", accountNumber, "day", l.state.CurrentDay.Format("02/01/2006"))
	}
}

// ledgerFor resolves the account and returns its ledger, creating an empty
// one on first use.
func (s *ledgerService) ledgerFor(ctx context.Context, accountNumber int) (*accountLedger, error) {
	if _, err := s.accounts.GetAccount(ctx, accountNumber); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.ledgers[accountNumber]
	if !ok {
		l = &accountLedger{state: *domain.NewAccountState(s.clock())}
		s.ledgers[accountNumber] = l
	}
	return l, nil
}
