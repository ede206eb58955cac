// internal/cli/menu.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"branch-ledger/internal/service"
	"branch-ledger/internal/util"

	"github.com/shopspring/decimal"
)

const currencySymbol = "R$"

const menuText = `
[d]  Deposit
[w]  Withdraw
[s]  Statement
[nu] New user
[na] New account
[l]  List accounts
[u]  List users
[t]  Transactions (filter)
[q]  Quit
=> `

// Menu is the interactive text front end. It parses operator input, calls the
// services and renders their results; it holds no banking state of its own.
type Menu struct {
	users    service.UserService
	accounts service.AccountService
	ledger   service.LedgerService
	clock    service.Clock
	logger   *slog.Logger

	in  *bufio.Scanner
	out io.Writer
}

// NewMenu creates a Menu reading commands from in and writing to out.
func NewMenu(
	users service.UserService,
	accounts service.AccountService,
	ledger service.LedgerService,
	clock service.Clock,
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		users:    users,
		accounts: accounts,
		ledger:   ledger,
		clock:    clock,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops until the operator quits, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		option, ok := m.prompt(menuText)
		if !ok {
			return m.in.Err()
		}

		m.ledger.AdvanceDay(ctx, m.clock())

		switch strings.ToLower(option) {
		case "d":
			m.deposit(ctx)
		case "w":
			m.withdraw(ctx)
		case "s":
			m.statement(ctx)
		case "nu":
			m.newUser(ctx)
		case "na":
			m.newAccount(ctx)
		case "l":
			m.listAccounts(ctx)
		case "u":
			m.listUsers(ctx)
		case "t":
			m.filterTransactions(ctx)
		case "q":
			m.println("Leaving the system... Goodbye!")
			return nil
		default:
			m.println("Invalid option! Please try again.")
		}
	}
}

func (m *Menu) deposit(ctx context.Context) {
	number, amount, ok := m.readAccountAndAmount("Deposit amount: ")
	if !ok {
		return
	}
	if _, err := m.ledger.Deposit(ctx, number, amount); err != nil {
		m.println(m.describe(ctx, err))
		return
	}
	m.println("Deposit completed successfully!")
}

func (m *Menu) withdraw(ctx context.Context) {
	number, amount, ok := m.readAccountAndAmount("Withdrawal amount: ")
	if !ok {
		return
	}
	if _, err := m.ledger.Withdraw(ctx, number, amount); err != nil {
		m.println(m.describe(ctx, err))
		return
	}
	m.println("Withdrawal completed successfully!")
}

func (m *Menu) statement(ctx context.Context) {
	number, ok := m.readAccountNumber()
	if !ok {
		return
	}
	st, err := m.ledger.FullStatement(ctx, number)
	if err != nil {
		m.println(m.describe(ctx, err))
		return
	}

	m.println("\n========== STATEMENT ==========")
	m.println(st.Account.String())
	if len(st.Entries) == 0 {
		m.println("No movements.")
	}
	for _, e := range st.Entries {
		m.println(e.String())
	}
	m.printf("\nCurrent balance: %s\n", money(st.Balance))
	m.println("===============================")
}

func (m *Menu) newUser(ctx context.Context) {
	taxID, ok := m.prompt("Tax id (numbers only): ")
	if !ok {
		return
	}
	if _, err := m.users.FindUser(ctx, taxID); err == nil {
		m.println(m.describe(ctx, util.ErrAlreadyExists))
		return
	}

	name, ok := m.prompt("Full name: ")
	if !ok {
		return
	}
	birthDate, ok := m.prompt("Birth date (dd/mm/yyyy): ")
	if !ok {
		return
	}
	address, ok := m.prompt("Address (street, number - district - city/state): ")
	if !ok {
		return
	}

	_, err := m.users.RegisterUser(ctx, service.RegisterUserInput{
		TaxID:     taxID,
		FullName:  name,
		BirthDate: birthDate,
		Address:   address,
	})
	if err != nil {
		m.println(m.describe(ctx, err))
		return
	}
	m.println("User created successfully!")
}

func (m *Menu) newAccount(ctx context.Context) {
	taxID, ok := m.prompt("Owner tax id: ")
	if !ok {
		return
	}
	acc, err := m.accounts.OpenAccount(ctx, taxID)
	if err != nil {
		m.println(m.describe(ctx, err))
		return
	}
	m.printf("Account created successfully! Branch %s, account %d.\n", acc.BranchCode, acc.Number)
}

func (m *Menu) listAccounts(ctx context.Context) {
	accounts, err := m.accounts.ListAccounts(ctx)
	if err != nil {
		m.println(m.describe(ctx, err))
		return
	}

	m.println("\n=== ACCOUNTS ===")
	if len(accounts) == 0 {
		m.println("No accounts registered.")
	}
	for _, a := range accounts {
		m.println(a.String())
	}
	m.println("================")
}

func (m *Menu) listUsers(ctx context.Context) {
	users, err := m.users.ListUsers(ctx)
	if err != nil {
		m.println(m.describe(ctx, err))
		return
	}

	m.println("\n=== USERS ===")
	if len(users) == 0 {
		m.println("No users registered.")
	}
	for _, u := range users {
		m.printf("Tax id: %s | Name: %s | Born: %s | Address: %s\n", u.TaxID, u.FullName, u.BirthDate, u.Address)
	}
	m.println("=============")
}

func (m *Menu) filterTransactions(ctx context.Context) {
	number, ok := m.readAccountNumber()
	if !ok {
		return
	}
	token, ok := m.prompt("Filter by type (deposit/withdrawal) or Enter for all: ")
	if !ok {
		return
	}
	seq, err := m.ledger.FilterStatement(ctx, number, token)
	if err != nil {
		m.println(m.describe(ctx, err))
		return
	}

	found := false
	for line := range seq {
		found = true
		m.println(line)
	}
	if !found {
		m.println("No transactions found.")
	}
}

func (m *Menu) readAccountAndAmount(label string) (int, decimal.Decimal, bool) {
	number, ok := m.readAccountNumber()
	if !ok {
		return 0, decimal.Zero, false
	}
	raw, ok := m.prompt(label)
	if !ok {
		return 0, decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		m.println("Invalid value.")
		return 0, decimal.Zero, false
	}
	return number, amount, true
}

func (m *Menu) readAccountNumber() (int, bool) {
	raw, ok := m.prompt("Account number: ")
	if !ok {
		return 0, false
	}
	number, err := strconv.Atoi(raw)
	if err != nil {
		m.println("Invalid account number.")
		return 0, false
	}
	return number, true
}

// describe maps a service error to the text shown to the operator.
func (m *Menu) describe(ctx context.Context, err error) string {
	limits := m.ledger.Limits()

	switch {
	case util.IsError(err, util.ErrInvalidAmount):
		return "Invalid amount."
	case util.IsError(err, util.ErrInsufficientFunds):
		return "Insufficient funds!"
	case util.IsError(err, util.ErrLimitExceeded):
		return fmt.Sprintf("Amount exceeds the withdrawal limit of %s!", money(limits.WithdrawalCeiling))
	case util.IsError(err, util.ErrDailyWithdrawalCapReached):
		return fmt.Sprintf("Daily limit of %d withdrawals reached!", limits.MaxWithdrawalsPerDay)
	case util.IsError(err, util.ErrDailyLimitExceeded):
		return fmt.Sprintf("Daily limit of %d transactions reached!", limits.MaxTransactionsPerDay)
	case util.IsError(err, util.ErrAlreadyExists):
		return "A user with this tax id already exists!"
	case util.IsError(err, util.ErrUserNotFound):
		return "User not found. Register the user before opening an account."
	case util.IsError(err, util.ErrAccountNotFound):
		return "Account not found."
	case util.IsError(err, util.ErrInvalidInput):
		return "Invalid input: " + err.Error()
	default:
		m.logger.ErrorContext(ctx, "Unhandled service error", "error", err)
		return "Unexpected error, please try again."
	}
}

// prompt prints label and reads one trimmed line. It reports false once input
// is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func money(d decimal.Decimal) string {
	return currencySymbol + " " + d.StringFixed(2)
}
