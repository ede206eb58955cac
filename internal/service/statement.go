// internal/service/statement.go
package service

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"branch-ledger/internal/domain"

	"github.com/shopspring/decimal"
)

// Statement is a read-only view of an account's ledger.
type Statement struct {
	Account domain.Account
	Entries []domain.LedgerEntry // Chronological
	Balance decimal.Decimal
}

// FullStatement returns every entry of the account together with the balance
// they add up to.
func (s *ledgerService) FullStatement(ctx context.Context, accountNumber int) (*Statement, error) {
	account, err := s.accounts.GetAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	l, err := s.ledgerFor(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	// Hold the account lock so entries and balance come from the same moment.
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := s.transactionRepo.GetTransactionsByAccount(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("full statement: failed to fetch transactions for account %d: %w", accountNumber, err)
	}
	return &Statement{
		Account: *account,
		Entries: entries,
		Balance: l.state.Balance,
	}, nil
}

// FilterStatement returns the rendered entries whose text contains token,
// ignoring case. An empty token matches every entry; whitespace is matched
// literally. The sequence reads from a
// snapshot taken now and can be ranged over any number of times.
func (s *ledgerService) FilterStatement(ctx context.Context, accountNumber int, token string) (iter.Seq[string], error) {
	st, err := s.FullStatement(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	return FilterEntries(st.Entries, token), nil
}

// FilterEntries is the pure filter behind FilterStatement.
func FilterEntries(entries []domain.LedgerEntry, token string) iter.Seq[string] {
	needle := strings.ToLower(token)
	return func(yield func(string) bool) {
		for _, e := range entries {
			line := e.String()
			if needle != "" && !strings.Contains(strings.ToLower(line), needle) {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
