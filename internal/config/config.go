// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"branch-ledger/internal/domain"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	BranchCode string
	Limits     domain.Limits
	LogLevel   string
	LogFormat  string
}

// LoadConfig loads configuration from environment variables, reading a .env
// file first when one exists. Real environment variables win over .env.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("BRANCH_CODE", domain.DefaultBranchCode)
	v.SetDefault("WITHDRAWAL_LIMIT", "500")
	v.SetDefault("DAILY_WITHDRAWAL_LIMIT", 3)
	v.SetDefault("DAILY_TRANSACTION_LIMIT", 10)
	v.SetDefault("RESET_WITHDRAWALS_ON_ROLLOVER", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.AutomaticEnv()

	branch := strings.TrimSpace(v.GetString("BRANCH_CODE"))
	if branch == "" {
		return nil, errors.New("BRANCH_CODE must not be empty")
	}

	ceiling, err := decimal.NewFromString(v.GetString("WITHDRAWAL_LIMIT"))
	if err != nil {
		return nil, fmt.Errorf("invalid WITHDRAWAL_LIMIT: %w", err)
	}
	if !ceiling.IsPositive() {
		return nil, fmt.Errorf("invalid WITHDRAWAL_LIMIT: must be positive, got %s", ceiling)
	}

	maxWithdrawals, err := positiveInt(v, "DAILY_WITHDRAWAL_LIMIT")
	if err != nil {
		return nil, err
	}
	maxTransactions, err := positiveInt(v, "DAILY_TRANSACTION_LIMIT")
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		BranchCode: branch,
		Limits: domain.Limits{
			WithdrawalCeiling:          ceiling,
			MaxWithdrawalsPerDay:       maxWithdrawals,
			MaxTransactionsPerDay:      maxTransactions,
			ResetWithdrawalsOnRollover: v.GetBool("RESET_WITHDRAWALS_ON_ROLLOVER"),
		},
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}, nil
}

func positiveInt(v *viper.Viper, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, n)
	}
	return n, nil
}
