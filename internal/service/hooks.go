// internal/service/hooks.go
package service

import (
	"context"
	"log/slog"

	"branch-ledger/internal/domain"
)

// TransactionHook is called once for every committed ledger entry, after the
// account lock has been released.
type TransactionHook func(ctx context.Context, entry domain.LedgerEntry)

// LoggingHook writes one structured record per committed transaction.
func LoggingHook(logger *slog.Logger) TransactionHook {
	return func(ctx context.Context, entry domain.LedgerEntry) {
		logger.InfoContext(ctx, "Transaction performed",
			"kind", entry.Kind,
			"account_number", entry.AccountNumber,
			"amount", entry.Amount.StringFixed(2),
			"entry_id", entry.ID,
			"at", entry.Timestamp.Format(domain.TimestampLayout),
		)
	}
}
