package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/fittrack/fittrack-go/internal/crypto"
	"github.com/fittrack/fittrack-go/internal/model"
	"github.com/fittrack/fittrack-go/internal/observability"
	"github.com/fittrack/fittrack-go/internal/repository"
)

// AuthService handles registration, login and token refresh.
type AuthService struct {
	users  UserStore
	hasher *crypto.PasswordHasher
	tokens *crypto.TokenIssuer

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *crypto.PasswordHasher, tokens *crypto.TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user account and returns its public profile.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateRequest(req); err != nil {
		return model.UserResponse{}, err
	}

	_, err := s.users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return model.UserResponse{}, ErrEmailTaken
	case !errors.Is(err, repository.ErrUserNotFound):
		return model.UserResponse{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.UserResponse{}, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return model.UserResponse{}, invalid("username", "A user with that username already exists.")
		}
		return model.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	observability.RecordRegistration()
	slog.InfoContext(ctx, "user registered", "user_id", user.ID)

	return model.NewUserResponse(user), nil
}

// Login checks the credentials and issues an access/refresh token pair.
// An unknown email and a wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same hashing cost as a real check.
			_, _ = s.hasher.Verify(req.Password, s.placeholderHash())
			observability.RecordLogin(false)
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		observability.RecordLogin(false)
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return model.LoginResponse{}, err
	}

	observability.RecordLogin(true)
	return model.LoginResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    model.NewUserResponse(user),
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, req model.RefreshRequest) (model.RefreshResponse, error) {
	claims, err := s.tokens.Validate(req.Refresh, crypto.RefreshToken)
	if err != nil {
		return model.RefreshResponse{}, ErrInvalidToken
	}

	if _, err := s.users.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.RefreshResponse{}, ErrInvalidToken
		}
		return model.RefreshResponse{}, err
	}

	access, err := s.tokens.IssueAccess(claims.UserID)
	if err != nil {
		return model.RefreshResponse{}, err
	}

	return model.RefreshResponse{Access: access}, nil
}

func (s *AuthService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("fittrack-placeholder-password")
		if err != nil {
			slog.Error("failed to build placeholder hash", "error", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
