package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/prelaunch-backend/internal/logger"
	"github.com/MKhiriev/prelaunch-backend/internal/store"
	"github.com/MKhiriev/prelaunch-backend/models"
)

// examPaperService is the concrete implementation of ExamPaperService.
type examPaperService struct {
	examPaperRepository store.ExamPaperRepository
	logger              *logger.Logger
}

func NewExamPaperService(examPaperRepository store.ExamPaperRepository, logger *logger.Logger) ExamPaperService {
	return &examPaperService{
		examPaperRepository: examPaperRepository,
		logger:              logger,
	}
}

// SubmitPaper stores an exam paper contribution.
//
// The resource URL is validated before the repository is touched; a
// malformed submission never reaches the store.
func (s *examPaperService) SubmitPaper(ctx context.Context, req models.ExamPaperRequest) (models.ExamPaper, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		log.Err(err).Str("resource_url", req.ResourceURL).Msg("invalid exam paper submission")
		return models.ExamPaper{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	paper := models.ExamPaper{
		Metadata:    req.Metadata,
		ResourceURL: req.ResourceURL,
	}

	storedPaper, err := s.examPaperRepository.AddPaper(ctx, paper)
	if err != nil {
		log.Err(err).Msg("exam paper storage failed")
		return models.ExamPaper{}, fmt.Errorf("exam paper storage failed: %w", err)
	}

	return storedPaper, nil
}

// ListPapers returns every stored contribution.
func (s *examPaperService) ListPapers(ctx context.Context) ([]models.ExamPaper, error) {
	log := logger.FromContext(ctx)

	papers, err := s.examPaperRepository.GetAllPapers(ctx)
	if err != nil {
		log.Err(err).Msg("exam paper listing failed")
		return nil, fmt.Errorf("exam paper listing failed: %w", err)
	}

	return papers, nil
}
