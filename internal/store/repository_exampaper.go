package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/prelaunch-backend/internal/logger"
	"github.com/MKhiriev/prelaunch-backend/models"
)

// examPaperRepository is the MongoDB-backed implementation of
// [ExamPaperRepository]. It operates on the "exam_papers" collection of the
// "prerelease" database. Submissions are immutable and not deduplicated.
type examPaperRepository struct {
	logger     *logger.Logger
	collection Collection
}

// NewExamPaperRepository constructs an [ExamPaperRepository] backed by the
// provided collection and logger.
func NewExamPaperRepository(collection Collection, logger *logger.Logger) ExamPaperRepository {
	logger.Debug().Msg("creating exam paper repository")
	return &examPaperRepository{
		collection: collection,
		logger:     logger,
	}
}

// AddPaper inserts a contribution document and returns it with the
// server-assigned ID populated.
func (r *examPaperRepository) AddPaper(ctx context.Context, paper models.ExamPaper) (models.ExamPaper, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.InsertOne(ctx, paper)
	if err != nil {
		log.Err(err).Str("resource_url", paper.ResourceURL).Msg("error inserting exam paper")
		return models.ExamPaper{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		paper.ID = id
	}

	return paper, nil
}

// GetAllPapers returns every stored contribution document.
func (r *examPaperRepository) GetAllPapers(ctx context.Context) ([]models.ExamPaper, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		log.Err(err).Msg("error querying exam papers")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	papers := make([]models.ExamPaper, 0)
	if err := cursor.All(ctx, &papers); err != nil {
		log.Err(err).Msg("error reading exam paper cursor")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return papers, nil
}
