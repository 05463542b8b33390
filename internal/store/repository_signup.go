package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/MKhiriev/prelaunch-backend/internal/logger"
	"github.com/MKhiriev/prelaunch-backend/models"
)

// signupRepository is the MongoDB-backed implementation of [SignupRepository].
// It operates on the "email_addresses" collection of the "prerelease"
// database. Signups are append-only and duplicates are permitted, so no
// index is maintained.
type signupRepository struct {
	logger     *logger.Logger
	collection Collection
}

// NewSignupRepository constructs a [SignupRepository] backed by the provided
// collection and logger.
func NewSignupRepository(collection Collection, logger *logger.Logger) SignupRepository {
	logger.Debug().Msg("creating signup repository")
	return &signupRepository{
		collection: collection,
		logger:     logger,
	}
}

// AddEmail appends a signup document.
func (r *signupRepository) AddEmail(ctx context.Context, signup models.EmailSignup) error {
	log := logger.FromContext(ctx)

	if _, err := r.collection.InsertOne(ctx, signup); err != nil {
		log.Err(err).Msg("error inserting signup")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GetAllEmails returns every stored signup document.
func (r *signupRepository) GetAllEmails(ctx context.Context) ([]models.EmailSignup, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		log.Err(err).Msg("error querying signups")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	signups := make([]models.EmailSignup, 0)
	if err := cursor.All(ctx, &signups); err != nil {
		log.Err(err).Msg("error reading signup cursor")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return signups, nil
}
