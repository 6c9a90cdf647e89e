package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/labcrm/crm-api/internal/auth"
	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/repository"
)

// AuthService handles login, registration and user lookup.
type AuthService struct {
	users  *repository.UserRepository
	issuer *auth.TokenIssuer
	logger *zap.Logger
}

func NewAuthService(users *repository.UserRepository, issuer *auth.TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, logger: logger}
}

// Login verifies credentials and issues a token. Unknown usernames and
// wrong passwords return the same error.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.logger.Info("user logged in", zap.String("username", user.Username))
	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	}, nil
}

// Register creates a new account. The role defaults to "user".
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error) {
	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleUser
	}
	user := &domain.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.logger.Info("registered user", zap.String("username", user.Username), zap.String("role", string(role)))
	resp := toUserResponse(user)
	return &resp, nil
}

// Me returns the account behind a user id.
func (s *AuthService) Me(ctx context.Context, id uuid.UUID) (*domain.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(user *domain.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}
