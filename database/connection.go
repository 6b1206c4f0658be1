package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultDBName = "UserInformation"
	opTimeout     = 10 * time.Second
)

// Store reaches the remote document store. Every operation opens its
// own client session and releases it before returning; no connection
// outlives the call that acquired it.
type Store struct {
	uri     string
	dbName  string
	timeout time.Duration
}

// InitStore reads the store configuration from the environment and
// verifies reachability with a single connect/ping/disconnect round trip.
func InitStore() (*Store, error) {
	log.Print("initializing document store connection...")

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, errors.New("environment variable MONGODB_URI must be set")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = defaultDBName
	}

	s := &Store{uri: uri, dbName: dbName, timeout: opTimeout}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from document store: %v", err)
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	log.Println("Document store connection successfully verified")
	return s, nil
}

// WithCollection runs fn against the named collection inside a
// connection scoped to this call: connect, single operation, close.
// The client is released on every exit path, and the operation context
// carries the store's per-operation timeout.
func (s *Store) WithCollection(ctx context.Context, name string, fn func(ctx context.Context, col *mongo.Collection) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return fmt.Errorf("failed to connect to document store: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from document store: %v", err)
		}
	}()

	return fn(ctx, client.Database(s.dbName).Collection(name))
}
