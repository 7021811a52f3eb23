// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// EditAccountInput carries the proposed profile values. Password and
// ConfirmPassword are optional but must be supplied together.
type EditAccountInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// --- Output DTOs ---

// AuthOutput is returned by register and login, which both log the account in.
type AuthOutput struct {
	Token     string
	ExpiresIn time.Duration
	AccountID uuid.UUID
	Account   *entity.Account
}

// DeleteOutput reports what an account deletion removed.
type DeleteOutput struct {
	DeletedPosts int64
}

// AccountUsecase defines the account lifecycle operations.
// Mutations take the caller's raw bearer token; only the account the token
// identifies may edit or delete itself.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	EditAccount(ctx context.Context, targetID uuid.UUID, callerToken string, input *EditAccountInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, targetID uuid.UUID, callerToken string) (*DeleteOutput, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	GetSelf(ctx context.Context, callerToken string) (*entity.Account, error)
}
