package user

import (
	"context"

	userRepo "invoicely/database/repository/user"
	"invoicely/models"
)

type UserService interface {
	// Registration and authentication
	Register(ctx context.Context, in RegisterInput) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, token string) error

	// Profile management
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterInput carries a new account's fields. Business profile fields are
// optional; they feed billFrom defaulting on invoices later.
type RegisterInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
}

// UpdateProfileInput is a partial profile update; empty strings are ignored.
type UpdateProfileInput struct {
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
}

// AuthResponse contains the user's ID, token, and display details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
