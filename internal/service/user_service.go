// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"branch-ledger/internal/domain"
	"branch-ledger/internal/repository"
	"branch-ledger/internal/util"

	"github.com/go-playground/validator/v10"
)

// UserService defines the identity registry.
type UserService interface {
	RegisterUser(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	FindUser(ctx context.Context, taxID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// RegisterUserInput carries the fields collected when registering a user.
type RegisterUserInput struct {
	TaxID     string `validate:"required,max=32"`
	FullName  string `validate:"required,max=120"`
	BirthDate string `validate:"max=32"`
	Address   string `validate:"max=200"`
}

type userService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// RegisterUser stores a new user. A tax id that is already registered fails
// with util.ErrAlreadyExists and leaves the registry unchanged.
func (s *userService) RegisterUser(ctx context.Context, in RegisterUserInput) (*domain.User, error) {
	in = RegisterUserInput{
		TaxID:     strings.TrimSpace(in.TaxID),
		FullName:  strings.TrimSpace(in.FullName),
		BirthDate: strings.TrimSpace(in.BirthDate),
		Address:   strings.TrimSpace(in.Address),
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", util.ErrInvalidInput, err)
	}

	user := domain.NewUser(in.TaxID, in.FullName, in.BirthDate, in.Address)
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, util.ErrAlreadyExists) {
			return nil, util.ErrAlreadyExists
		}
		return nil, fmt.Errorf("register user: failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "User registered", "tax_id", user.TaxID)
	return user, nil
}

// FindUser looks a user up by tax id.
func (s *userService) FindUser(ctx context.Context, taxID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
