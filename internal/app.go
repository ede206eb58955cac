// internal/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"branch-ledger/internal/cli"
	"branch-ledger/internal/config"
	"branch-ledger/internal/repository"
	"branch-ledger/internal/repository/memory"
	"branch-ledger/internal/service"
	"branch-ledger/internal/util"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	Clock  service.Clock

	// Repositories
	UserRepository        repository.UserRepository
	AccountRepository     repository.AccountRepository
	TransactionRepository repository.TransactionRepository

	// Services
	UserService    service.UserService
	AccountService service.AccountService
	LedgerService  service.LedgerService
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{Clock: time.Now}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.LogLevel, cfg.LogFormat)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.",
		"branch_code", cfg.BranchCode,
		"withdrawal_limit", cfg.Limits.WithdrawalCeiling.StringFixed(2),
		"daily_withdrawals", cfg.Limits.MaxWithdrawalsPerDay,
		"daily_transactions", cfg.Limits.MaxTransactionsPerDay,
		"reset_withdrawals_on_rollover", cfg.Limits.ResetWithdrawalsOnRollover,
	)

	// 3. Initialize Repositories
	app.UserRepository = memory.NewUserRepository()
	app.AccountRepository = memory.NewAccountRepository()
	app.TransactionRepository = memory.NewTransactionRepository()
	app.Logger.Debug("Repositories initialized.")

	// 4. Initialize Services
	app.UserService = service.NewUserService(app.UserRepository, app.Logger)
	app.AccountService = service.NewAccountService(app.UserService, app.AccountRepository, cfg.BranchCode, app.Logger)
	app.LedgerService = service.NewLedgerService(
		app.AccountService,
		app.TransactionRepository,
		cfg.Limits,
		app.Clock,
		app.Logger,
		service.LoggingHook(app.Logger),
	)
	app.Logger.Debug("Services initialized.")

	return nil
}

// NewMenu builds the interactive menu over the initialized services.
func (app *Application) NewMenu(in io.Reader, out io.Writer) *cli.Menu {
	return cli.NewMenu(app.UserService, app.AccountService, app.LedgerService, app.Clock, app.Logger, in, out)
}

// Shutdown releases application resources. All state is in memory and is
// discarded.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
