package userRepo

import (
	"context"

	"invoicely/database"
	"invoicely/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines methods for user data access. Lookups that miss
// return (nil, nil).
type UserRepository interface {
	// Create inserts a new user record, assigning an ID if absent.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateProfile applies a partial $set update to profile fields and
	// returns the updated user.
	UpdateProfile(ctx context.Context, id string, fields map[string]any) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a new UserRepository instance using MongoDB.
func NewMongoUserRepo() UserRepository {
	repo := &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
