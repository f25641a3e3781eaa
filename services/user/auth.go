package user

import (
	"context"
	"fmt"
	"time"

	"invoicely/models"
	"invoicely/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Register creates a new account and returns a signed token for it.
func (s *DefaultUserService) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, AuthError{Reason: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		BusinessName: in.BusinessName,
		Address:      in.Address,
		Phone:        in.Phone,
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("User registered", zap.String("userID", usr.ID))
	return &AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email}, nil
}

// Authenticate verifies credentials and returns a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, AuthError{Reason: "invalid email or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, AuthError{Reason: "invalid email or password"}
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email}, nil
}

// SignOut revokes the presented token for the remainder of its lifetime.
func (s *DefaultUserService) SignOut(ctx context.Context, token string) error {
	cache := utils.GetAuthCacheClient()
	key := utils.RevokedTokenPrefix + utils.HashToken(token)
	if err := cache.Set(ctx, key, "1", tokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
