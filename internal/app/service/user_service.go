package service

import (
	"context"
	"errors"
	"time"

	"code_tutor/internal/common"
	"code_tutor/internal/common/security"
	"code_tutor/internal/domain/model"
	"code_tutor/internal/domain/repository"
	"code_tutor/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

type UserService struct {
	userRepo      repository.UserRepository
	authenticator Authenticator
	issueTokens   bool
	tokenTTL      time.Duration
}

// NewUserService builds the service. With issueTokens false, login answers with
// security.PlaceholderToken instead of a signed JWT.
func NewUserService(userRepo repository.UserRepository, authenticator Authenticator, issueTokens bool, tokenTTL time.Duration) *UserService {
	return &UserService{
		userRepo:      userRepo,
		authenticator: authenticator,
		issueTokens:   issueTokens,
		tokenTTL:      tokenTTL,
	}
}

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest accepts the login email under either "email" or "username".
type LoginRequest struct {
	Email    string `json:"email" validate:"required_without=Username"`
	Username string `json:"username" validate:"required_without=Email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

type LoginResponse struct {
	Token  string `json:"token"`
	Name   string `json:"name"`
	UserID int64  `json:"userId"`
}

func (s *UserService) SignUp(ctx context.Context, req SignUpRequest) error {
	if len(req.Password) > security.MaxPasswordBytes {
		return common.Errorf("password exceeds %d bytes: %w", security.MaxPasswordBytes, common.ErrValidation)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return common.Errorf("failed to check email: %w", err)
	}
	if exists {
		return common.Errorf("email %s is already registered: %w", req.Email, common.ErrConflict)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return common.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index still guards against a concurrent sign-up.
		return common.Errorf("failed to create user: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("User signed up")
	return nil
}

func (s *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := req.Identifier()

	if _, err := s.authenticator.Authenticate(ctx, Credentials{Email: email, Password: req.Password}); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			metrics.RecordLogin("unauthorized")
			return nil, common.Errorf("invalid email or password: %w", common.ErrUnauthorized)
		}
		metrics.RecordLogin("error")
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		metrics.RecordLogin("error")
		if errors.Is(err, common.ErrNotFound) {
			logrus.WithField("email", email).Error("Authenticated user is missing from storage")
			return nil, common.Errorf("user %s not found after authentication: %w", email, common.ErrInconsistentState)
		}
		return nil, common.Errorf("failed to load user: %w", err)
	}

	token := security.PlaceholderToken
	if s.issueTokens {
		token, err = security.GenerateToken(user.ID, s.tokenTTL)
		if err != nil {
			metrics.RecordLogin("error")
			return nil, common.Errorf("failed to generate token: %w", err)
		}
	}

	metrics.RecordLogin("success")
	logrus.WithField("user_id", user.ID).Info("User logged in")
	return &LoginResponse{Token: token, Name: user.Name, UserID: user.ID}, nil
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, common.Errorf("failed to load user %d: %w", userID, err)
	}
	return user, nil
}
