package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"BRANCH_CODE",
	"WITHDRAWAL_LIMIT",
	"DAILY_WITHDRAWAL_LIMIT",
	"DAILY_TRANSACTION_LIMIT",
	"RESET_WITHDRAWALS_ON_ROLLOVER",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

// clearEnv runs the test from an empty directory so no .env is picked up, and
// blanks every key so only the defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0001", cfg.BranchCode)
	assert.True(t, decimal.NewFromInt(500).Equal(cfg.Limits.WithdrawalCeiling))
	assert.Equal(t, 3, cfg.Limits.MaxWithdrawalsPerDay)
	assert.Equal(t, 10, cfg.Limits.MaxTransactionsPerDay)
	assert.True(t, cfg.Limits.ResetWithdrawalsOnRollover)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRANCH_CODE", "0042")
	t.Setenv("WITHDRAWAL_LIMIT", "250.50")
	t.Setenv("DAILY_WITHDRAWAL_LIMIT", "5")
	t.Setenv("DAILY_TRANSACTION_LIMIT", "20")
	t.Setenv("RESET_WITHDRAWALS_ON_ROLLOVER", "false")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0042", cfg.BranchCode)
	assert.True(t, decimal.RequireFromString("250.50").Equal(cfg.Limits.WithdrawalCeiling))
	assert.Equal(t, 5, cfg.Limits.MaxWithdrawalsPerDay)
	assert.Equal(t, 20, cfg.Limits.MaxTransactionsPerDay)
	assert.False(t, cfg.Limits.ResetWithdrawalsOnRollover)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"BRANCH_CODE":             "   ",
		"WITHDRAWAL_LIMIT":        "lots",
		"DAILY_WITHDRAWAL_LIMIT":  "three",
		"DAILY_TRANSACTION_LIMIT": "0",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("BRANCH_CODE")
	require.NoError(t, os.WriteFile(".env", []byte("BRANCH_CODE=0099\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0099", cfg.BranchCode)
}

func TestLoadConfig_MalformedDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("BRANCH_CODE=\"0099\n"), 0o600))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}
