package service

import (
	"context"
	"errors"

	"code_tutor/internal/common"
	"code_tutor/internal/common/security"
	"code_tutor/internal/domain/repository"
)

type Credentials struct {
	Email    string
	Password string
}

type Principal struct {
	UserID int64
	Email  string
}

// Authenticator verifies credentials. Invalid credentials yield common.ErrUnauthorized.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*Principal, error)
}

// PasswordAuthenticator checks credentials against the bcrypt hash stored for the email.
type PasswordAuthenticator struct {
	userRepo repository.UserRepository
}

func NewPasswordAuthenticator(userRepo repository.UserRepository) *PasswordAuthenticator {
	return &PasswordAuthenticator{userRepo: userRepo}
}

func (a *PasswordAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*Principal, error) {
	user, err := a.userRepo.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized // Generic message for security
		}
		return nil, common.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(creds.Password, user.HashedPassword) {
		return nil, common.ErrUnauthorized
	}
	return &Principal{UserID: user.ID, Email: user.Email}, nil
}
