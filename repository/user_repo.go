package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/smadsen/powerium/database"
	"github.com/smadsen/powerium/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// MongoUserRepository is the document-store backed UserRepository.
type MongoUserRepository struct {
	store *database.Store
}

func NewUserRepository(store *database.Store) *MongoUserRepository {
	return &MongoUserRepository{store: store}
}

// CreateUser inserts a new user after hashing the password.
func (r *MongoUserRepository) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	err = r.store.WithCollection(ctx, UserCollection, func(ctx context.Context, col *mongo.Collection) error {
		// The store enforces no unique index on email, so check first.
		count, err := col.CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			return fmt.Errorf("error checking for existing user: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}

		res, err := col.InsertOne(ctx, u)
		if err != nil {
			return fmt.Errorf("error inserting user: %w", err)
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			u.ID = oid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByEmail retrieves a user by their email address.
func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.store.WithCollection(ctx, UserCollection, func(ctx context.Context, col *mongo.Collection) error {
		return col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // User not found, return nil error and nil user
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return &u, nil
}

// GetUserByID retrieves a user by their identifier.
func (r *MongoUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := r.store.WithCollection(ctx, UserCollection, func(ctx context.Context, col *mongo.Collection) error {
		return col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}
	return &u, nil
}

// CheckPasswordHash compares a plaintext password with a stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil // Returns true if password matches hash
}
