// internal/domain/limits.go
package domain

import "github.com/shopspring/decimal"

// Limits holds the fixed rules a ledger enforces on every account.
type Limits struct {
	WithdrawalCeiling     decimal.Decimal // Maximum amount of a single withdrawal
	MaxWithdrawalsPerDay  int
	MaxTransactionsPerDay int // Deposits and withdrawals combined
	// ResetWithdrawalsOnRollover also clears the withdrawal count when the day
	// changes. When false the withdrawal cap lasts for the whole process.
	ResetWithdrawalsOnRollover bool
}

// DefaultLimits returns the branch's standard limits: 500 per withdrawal,
// 3 withdrawals and 10 transactions per day, both counters reset daily.
func DefaultLimits() Limits {
	return Limits{
		WithdrawalCeiling:          decimal.NewFromInt(500),
		MaxWithdrawalsPerDay:       3,
		MaxTransactionsPerDay:      10,
		ResetWithdrawalsOnRollover: true,
	}
}
