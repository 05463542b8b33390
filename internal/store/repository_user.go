// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/prelaunch-backend/internal/logger"
	"github.com/MKhiriev/prelaunch-backend/models"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It operates on the "users" collection of the "released" database, which
// carries a unique index on the email field.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger     *logger.Logger
	collection Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// collection and logger.
func NewUserRepository(collection Collection, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		collection: collection,
		logger:     logger,
	}
}

// CreateUser inserts a new account document and returns the persisted
// [models.User] with the server-assigned ID populated.
//
// Error handling:
//   - Duplicate-key rejection by the unique email index → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("email", user.Email).Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return user, nil
}

// FindUserByEmail retrieves the account document whose email matches the
// given value.
//
// Error handling:
//   - mongo.ErrNoDocuments → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	filter := bson.D{{Key: "email", Value: email}}

	if err := r.collection.FindOne(ctx, filter).Decode(&foundUser); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("email", email).Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// CountByEmail reports the number of account documents carrying the given
// email. With the unique index in place the result is 0 or 1.
func (r *userRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	log := logger.FromContext(ctx)

	filter := bson.D{{Key: "email", Value: email}}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		log.Err(err).Str("email", email).Msg("error counting users by email")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
