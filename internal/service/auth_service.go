package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/metrics"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	Authenticate(ctx context.Context, key string) (*model.User, error)
	Logout(ctx context.Context, key string) error
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) AuthService {
	return &authService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *authService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	if username == "" || password == "" {
		metrics.Logins.WithLabelValues("bad_request").Inc()
		return nil, invalid("Username and password required")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.Logins.WithLabelValues("rejected").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.Logins.WithLabelValues("rejected").Inc()
		log.Warn().Str("username", username).Msg("Login rejected")
		return nil, ErrInvalidCredentials
	}

	candidate, err := newTokenKey()
	if err != nil {
		return nil, err
	}
	token, err := s.tokenRepo.GetOrCreate(ctx, user.ID, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	metrics.Logins.WithLabelValues("success").Inc()
	log.Info().Uint("userID", user.ID).Msg("User logged in")
	return &dto.LoginResponse{Token: token.Key, Username: user.Username, Message: "Login successful"}, nil
}

// Authenticate resolves a token to its active user.
func (s *authService) Authenticate(ctx context.Context, key string) (*model.User, error) {
	if key == "" {
		return nil, ErrUnauthorized
	}
	token, err := s.tokenRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	if !token.User.IsActive {
		return nil, ErrUnauthorized
	}
	return &token.User, nil
}

// Logout forgets the token. Unknown tokens are ignored.
func (s *authService) Logout(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.tokenRepo.DeleteByKey(ctx, key); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// newTokenKey returns 40 hex characters of randomness.
func newTokenKey() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
