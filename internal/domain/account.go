// internal/domain/account.go
package domain

import (
	"fmt"
	"time"
)

// DefaultBranchCode is the issuing branch used when none is configured.
const DefaultBranchCode = "0001"

// Account is a checking account held by exactly one User.
type Account struct {
	BranchCode string    `json:"branch_code"`
	Number     int       `json:"number"` // Assigned by the registry, starting at 1
	Owner      User      `json:"owner"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAccount creates a new Account instance. Number is left zero until the
// account is stored.
func NewAccount(branchCode string, owner User) *Account {
	return &Account{
		BranchCode: branchCode,
		Owner:      owner,
		CreatedAt:  time.Now().UTC(),
	}
}

// String renders the account as a single listing line.
func (a Account) String() string {
	return fmt.Sprintf("Branch: %s | Account: %d | Holder: %s", a.BranchCode, a.Number, a.Owner.FullName)
}
