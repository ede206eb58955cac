// internal/domain/account_state.go
package domain

import (
	"time"

	"branch-ledger/internal/util"

	"github.com/shopspring/decimal"
)

// AccountState is the mutable part of an account: its balance and the
// counters scoped to CurrentDay.
type AccountState struct {
	Balance           decimal.Decimal `json:"balance"`
	WithdrawalsToday  int             `json:"withdrawals_today"`
	TransactionsToday int             `json:"transactions_today"`
	CurrentDay        time.Time       `json:"current_day"` // Midnight of the tracked calendar day
}

// NewAccountState returns a zero-balance state tracking the day of now.
func NewAccountState(now time.Time) *AccountState {
	return &AccountState{
		Balance:    decimal.Zero,
		CurrentDay: truncateToDay(now),
	}
}

// RollIfNewDay resets the daily counters when today falls on a later
// calendar day than CurrentDay. today is read in CurrentDay's location. It
// reports whether a reset happened.
func (s *AccountState) RollIfNewDay(today time.Time, limits Limits) bool {
	day := truncateToDay(today.In(s.CurrentDay.Location()))
	if !day.After(s.CurrentDay) {
		return false
	}
	s.CurrentDay = day
	s.TransactionsToday = 0
	if limits.ResetWithdrawalsOnRollover {
		s.WithdrawalsToday = 0
	}
	return true
}

// ApplyDeposit credits amount after checking the daily transaction cap and
// the amount, in that order.
func (s *AccountState) ApplyDeposit(amount decimal.Decimal, limits Limits) error {
	if s.TransactionsToday >= limits.MaxTransactionsPerDay {
		return util.ErrDailyLimitExceeded
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidAmount
	}

	s.Balance = s.Balance.Add(amount)
	s.TransactionsToday++
	return nil
}

// ApplyWithdrawal debits amount. Checks run in a fixed order and the first
// failing one decides the error.
func (s *AccountState) ApplyWithdrawal(amount decimal.Decimal, limits Limits) error {
	switch {
	case s.TransactionsToday >= limits.MaxTransactionsPerDay:
		return util.ErrDailyLimitExceeded
	case amount.GreaterThan(s.Balance):
		return util.ErrInsufficientFunds
	case amount.GreaterThan(limits.WithdrawalCeiling):
		return util.ErrLimitExceeded
	case s.WithdrawalsToday >= limits.MaxWithdrawalsPerDay:
		return util.ErrDailyWithdrawalCapReached
	case amount.LessThanOrEqual(decimal.Zero):
		return util.ErrInvalidAmount
	}

	s.Balance = s.Balance.Sub(amount)
	s.WithdrawalsToday++
	s.TransactionsToday++
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
