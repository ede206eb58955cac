package domain_test

import (
	"testing"
	"time"

	"branch-ledger/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEntry_String(t *testing.T) {
	at := time.Date(2026, 10, 19, 14, 3, 7, 0, time.UTC)

	tests := []struct {
		name  string
		entry *domain.LedgerEntry
		want  string
	}{
		{
			name:  "deposit with cents",
			entry: domain.NewLedgerEntry(1, domain.EntryKindDeposit, decimal.RequireFromString("10.5"), at),
			want:  "[19/10/2026 14:03:07] Deposit: 10.50",
		},
		{
			name:  "whole withdrawal",
			entry: domain.NewLedgerEntry(1, domain.EntryKindWithdrawal, decimal.NewFromInt(100), at),
			want:  "[19/10/2026 14:03:07] Withdrawal: 100.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.String())
		})
	}
}

func TestNewLedgerEntry_AssignsUniqueIDs(t *testing.T) {
	a := domain.NewLedgerEntry(1, domain.EntryKindDeposit, decimal.NewFromInt(1), time.Now())
	b := domain.NewLedgerEntry(1, domain.EntryKindDeposit, decimal.NewFromInt(1), time.Now())
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAccount_String(t *testing.T) {
	owner := domain.NewUser("12345678900", "Ana Souza", "01/02/1990", "Rua A, 1 - Centro - Recife/PE")
	acc := domain.NewAccount(domain.DefaultBranchCode, *owner)
	acc.Number = 7

	assert.Equal(t, "Branch: 0001 | Account: 7 | Holder: Ana Souza", acc.String())
}
