// internal/domain/transaction.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// EntryKind defines the type of a ledger entry.
type EntryKind string

const (
	EntryKindDeposit    EntryKind = "Deposit"
	EntryKindWithdrawal EntryKind = "Withdrawal"
)

// TimestampLayout is the display layout for entry timestamps.
const TimestampLayout = "02/01/2006 15:04:05"

// LedgerEntry is an immutable record of one accepted transaction.
type LedgerEntry struct {
	ID            string          `json:"id"`
	AccountNumber int             `json:"account_number"`
	Kind          EntryKind       `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
}

// NewLedgerEntry creates a new LedgerEntry stamped with at.
func NewLedgerEntry(accountNumber int, kind EntryKind, amount decimal.Decimal, at time.Time) *LedgerEntry {
	return &LedgerEntry{
		ID:            uuid.NewString(),
		AccountNumber: accountNumber,
		Kind:          kind,
		Amount:        amount,
		Timestamp:     at,
	}
}

// String renders the entry the way statements print it,
// e.g. "[19/10/2026 14:03:00] Withdrawal: 100.00".
func (e LedgerEntry) String() string {
	return fmt.Sprintf("[%s] %s: %s", e.Timestamp.Format(TimestampLayout), e.Kind, e.Amount.StringFixed(2))
}
