package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/prelaunch-backend/internal/config"
	"github.com/MKhiriev/prelaunch-backend/internal/logger"
	"github.com/MKhiriev/prelaunch-backend/models"
)

// Database names. The prerelease database holds landing-page data (signups
// and contributions); the released database holds full user accounts.
const (
	prereleaseDatabase = "prerelease"
	releasedDatabase   = "released"
)

// Storages aggregates every repository of the application together with the
// shared MongoDB client they run on. It is constructed once at startup and
// injected into the service layer; there is no package-level connection
// state.
type Storages struct {
	UserRepository      UserRepository
	SignupRepository    SignupRepository
	ExamPaperRepository ExamPaperRepository

	client *mongo.Client
}

// NewStorages connects to MongoDB, ensures the unique email index on the
// users collection, and wires all repositories.
//
// The index is created before any repository is handed out so that the
// uniqueness invariant holds from the first request onward.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	client, err := NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("error creating mongo client: %w", err)
	}

	users := client.Database(releasedDatabase).Collection(models.User{}.CollectionName())
	if err := ensureEmailIndex(ctx, users); err != nil {
		return nil, fmt.Errorf("error ensuring email index: %w", err)
	}

	prerelease := client.Database(prereleaseDatabase)
	signups := prerelease.Collection(models.EmailSignup{}.CollectionName())
	papers := prerelease.Collection(models.ExamPaper{}.CollectionName())

	return &Storages{
		UserRepository:      NewUserRepository(users, logger),
		SignupRepository:    NewSignupRepository(signups, logger),
		ExamPaperRepository: NewExamPaperRepository(papers, logger),
		client:              client,
	}, nil
}

// Close disconnects the underlying MongoDB client. Call during application
// shutdown after the servers have stopped accepting requests.
func (s *Storages) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureEmailIndex creates the unique ascending index on the email field of
// the users collection. CreateOne is idempotent for an identical existing
// index.
func ensureEmailIndex(ctx context.Context, users *mongo.Collection) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := users.Indexes().CreateOne(ctx, model)
	return err
}
