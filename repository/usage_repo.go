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
)

// MongoUsageRepository is the document-store backed UsageRepository.
type MongoUsageRepository struct {
	store *database.Store
}

func NewUsageRepository(store *database.Store) *MongoUsageRepository {
	return &MongoUsageRepository{store: store}
}

// CreateUsageRecord inserts a usage submission owned by rec.UserID.
// The owner must exist; each check and the insert runs in its own
// scoped store connection.
func (r *MongoUsageRepository) CreateUsageRecord(ctx context.Context, rec *models.UsageRecord) error {
	err := r.store.WithCollection(ctx, UserCollection, func(ctx context.Context, col *mongo.Collection) error {
		count, err := col.CountDocuments(ctx, bson.M{"_id": rec.UserID})
		if err != nil {
			return fmt.Errorf("error checking usage owner: %w", err)
		}
		if count == 0 {
			return ErrUnknownOwner
		}
		return nil
	})
	if err != nil {
		return err
	}

	rec.DateCreated = time.Now().UTC()

	return r.store.WithCollection(ctx, UsageCollection, func(ctx context.Context, col *mongo.Collection) error {
		res, err := col.InsertOne(ctx, rec)
		if err != nil {
			return fmt.Errorf("error inserting usage record: %w", err)
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			rec.ID = oid
		}
		return nil
	})
}

// GetUsageByUser retrieves every usage record owned by the user.
func (r *MongoUsageRepository) GetUsageByUser(ctx context.Context, userID primitive.ObjectID) ([]models.UsageRecord, error) {
	var records []models.UsageRecord
	err := r.store.WithCollection(ctx, UsageCollection, func(ctx context.Context, col *mongo.Collection) error {
		cur, err := col.Find(ctx, bson.M{"userId": userID})
		if err != nil {
			return fmt.Errorf("error finding usage records: %w", err)
		}
		return cur.All(ctx, &records)
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
