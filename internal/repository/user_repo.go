// internal/repository/user_repo.go
package repository

import (
	"context"

	"branch-ledger/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser stores a new user. It returns util.ErrAlreadyExists when the tax id is taken.
	CreateUser(ctx context.Context, user *domain.User) error
	// GetUserByTaxID retrieves a user by tax id, or util.ErrNotFound.
	GetUserByTaxID(ctx context.Context, taxID string) (*domain.User, error)
	// ListUsers returns every user in registration order.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
