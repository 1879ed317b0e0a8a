package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService interface {
	// EnsureAccount creates the user or resets its password. It reports
	// whether a new user was created.
	EnsureAccount(ctx context.Context, username, password string) (*model.User, bool, error)
}

type accountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) AccountService {
	return &accountService{userRepo: userRepo}
}

func (s *accountService) EnsureAccount(ctx context.Context, username, password string) (*model.User, bool, error) {
	if username == "" || password == "" {
		return nil, false, invalid("Username and password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &model.User{Username: username, PasswordHash: string(hash), IsActive: true}
		err = s.userRepo.Create(ctx, user)
		if err == nil {
			log.Info().Str("username", username).Msg("Account created")
			return user, true, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		// Lost a race with a concurrent provisioner; fall through to reset.
		user, err = s.userRepo.FindByUsername(ctx, username)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return nil, false, fmt.Errorf("failed to reset password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.IsActive = true
	log.Info().Str("username", username).Msg("Account password reset")
	return user, false, nil
}
