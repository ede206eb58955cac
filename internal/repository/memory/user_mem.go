// internal/repository/memory/user_mem.go
package memory

import (
	"context"
	"sync"

	"branch-ledger/internal/domain"
	"branch-ledger/internal/repository"
	"branch-ledger/internal/util"
)

// UserRepository implements repository.UserRepository in memory.
// The registry is expected to stay small, so lookups are a linear scan.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserRepository creates a new, empty UserRepository.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

// CreateUser stores a copy of user unless its tax id is already registered.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.find(user.TaxID) != nil {
		return util.ErrAlreadyExists
	}
	r.users = append(r.users, *user)
	return nil
}

// GetUserByTaxID retrieves a user by tax id.
func (r *UserRepository) GetUserByTaxID(ctx context.Context, taxID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u := r.find(taxID)
	if u == nil {
		return nil, util.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// ListUsers returns a copy of every user in registration order.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) find(taxID string) *domain.User {
	for i := range r.users {
		if r.users[i].TaxID == taxID {
			return &r.users[i]
		}
	}
	return nil
}
