package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"branch-ledger/internal/domain"
	"branch-ledger/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	ana := domain.NewUser("111", "Ana", "01/01/1990", "Rua A")
	require.NoError(t, repo.CreateUser(ctx, ana))
	require.NoError(t, repo.CreateUser(ctx, domain.NewUser("222", "Bruno", "02/02/1992", "Rua B")))

	t.Run("duplicate tax id is rejected", func(t *testing.T) {
		err := repo.CreateUser(ctx, domain.NewUser("111", "Other", "", ""))
		assert.ErrorIs(t, err, util.ErrAlreadyExists)

		users, err := repo.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("lookup by tax id", func(t *testing.T) {
		got, err := repo.GetUserByTaxID(ctx, "111")
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.FullName)

		_, err = repo.GetUserByTaxID(ctx, "999")
		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	t.Run("list keeps registration order and returns copies", func(t *testing.T) {
		users, err := repo.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "111", users[0].TaxID)
		assert.Equal(t, "222", users[1].TaxID)

		users[0].FullName = "mutated"
		again, _ := repo.GetUserByTaxID(ctx, "111")
		assert.Equal(t, "Ana", again.FullName)
	})
}

func TestAccountRepository_SequentialNumbers(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	owner := domain.NewUser("111", "Ana", "", "")

	for want := 1; want <= 5; want++ {
		acc := domain.NewAccount(domain.DefaultBranchCode, *owner)
		require.NoError(t, repo.CreateAccount(ctx, acc))
		assert.Equal(t, want, acc.Number)
	}

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	for i, a := range accounts {
		assert.Equal(t, i+1, a.Number)
	}

	got, err := repo.GetAccountByNumber(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Number)

	for _, n := range []int{0, -1, 6} {
		_, err := repo.GetAccountByNumber(ctx, n)
		assert.ErrorIs(t, err, util.ErrNotFound, "number %d", n)
	}
}

func TestAccountRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	owner := domain.NewUser("111", "Ana", "", "")

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = repo.CreateAccount(ctx, domain.NewAccount(domain.DefaultBranchCode, *owner))
		}()
	}
	wg.Wait()

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, n)
	for i, a := range accounts {
		assert.Equal(t, i+1, a.Number)
	}
}

func TestTransactionRepository_FiltersByAccountInOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()
	now := time.Now()

	require.NoError(t, repo.CreateTransaction(ctx, domain.NewLedgerEntry(1, domain.EntryKindDeposit, decimal.NewFromInt(10), now)))
	require.NoError(t, repo.CreateTransaction(ctx, domain.NewLedgerEntry(2, domain.EntryKindDeposit, decimal.NewFromInt(20), now)))
	require.NoError(t, repo.CreateTransaction(ctx, domain.NewLedgerEntry(1, domain.EntryKindWithdrawal, decimal.NewFromInt(5), now)))

	entries, err := repo.GetTransactionsByAccount(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.EntryKindDeposit, entries[0].Kind)
	assert.Equal(t, domain.EntryKindWithdrawal, entries[1].Kind)

	none, err := repo.GetTransactionsByAccount(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}
