package repository

import (
	"context"
	"errors"

	"github.com/smadsen/powerium/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names in the document store.
const (
	UserCollection  = "user-info"
	UsageCollection = "user-inputs"
)

var (
	// ErrEmailTaken reports a registration attempt for an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnknownOwner reports a usage insert whose owning user does not exist.
	ErrUnknownOwner = errors.New("owning user does not exist")
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser hashes the password and inserts a new user.
	// Returns ErrEmailTaken when the email already has an account.
	CreateUser(ctx context.Context, name, email, password string) (*models.User, error)
	// GetUserByEmail returns nil, nil when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns nil, nil when no such user exists.
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// UsageRepository persists and looks up energy-usage submissions.
type UsageRepository interface {
	// CreateUsageRecord stamps DateCreated and inserts the record.
	// Returns ErrUnknownOwner when rec.UserID references no user.
	CreateUsageRecord(ctx context.Context, rec *models.UsageRecord) error
	// GetUsageByUser returns every record owned by the user, order unspecified.
	GetUsageByUser(ctx context.Context, userID primitive.ObjectID) ([]models.UsageRecord, error)
}
