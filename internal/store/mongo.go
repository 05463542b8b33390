// Package store implements the persistence layer of the application on top
// of MongoDB. Handlers never touch the driver directly: they consume the
// repository interfaces wired together by [NewStorages].
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/prelaunch-backend/internal/config"
)

// Collection is the subset of *mongo.Collection operations the repositories
// consume. Narrowing the dependency to an interface keeps repositories
// testable without a running MongoDB instance.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// NewMongoClient connects to the MongoDB instance described by cfg and
// verifies the connection with a ping.
//
// The connection string is assembled from the environment-supplied scheme,
// host, and port; the pool size is bounded by cfg.MaxPoolSize. The returned
// client is safe for concurrent use by in-flight requests.
func NewMongoClient(ctx context.Context, cfg config.Mongo) (*mongo.Client, error) {
	uri := fmt.Sprintf("%s://%s:%s/?directConnection=true&serverSelectionTimeoutMS=2000", cfg.Scheme, cfg.Host, cfg.Port)

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	return client, nil
}
