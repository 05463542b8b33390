package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/prelaunch-backend/internal/logger"
	"github.com/MKhiriev/prelaunch-backend/internal/store"
	"github.com/MKhiriev/prelaunch-backend/models"
)

// signupService is the concrete implementation of SignupService.
type signupService struct {
	signupRepository store.SignupRepository
	logger           *logger.Logger
}

func NewSignupService(signupRepository store.SignupRepository, logger *logger.Logger) SignupService {
	return &signupService{
		signupRepository: signupRepository,
		logger:           logger,
	}
}

// AddSignup stores a prerelease notification signup.
//
// The email is validated before the repository is touched; a malformed
// request never reaches the store. Duplicate signups are allowed.
func (s *signupService) AddSignup(ctx context.Context, req models.NotifyMeRequest) error {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		log.Err(err).Msg("invalid signup data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.signupRepository.AddEmail(ctx, models.EmailSignup{Email: req.Email}); err != nil {
		log.Err(err).Msg("signup storage failed")
		return fmt.Errorf("signup storage failed: %w", err)
	}

	return nil
}

// ListSignups returns every stored signup. Storage failures surface to the
// caller instead of degrading to an empty list.
func (s *signupService) ListSignups(ctx context.Context) ([]models.EmailSignup, error) {
	log := logger.FromContext(ctx)

	signups, err := s.signupRepository.GetAllEmails(ctx)
	if err != nil {
		log.Err(err).Msg("signup listing failed")
		return nil, fmt.Errorf("signup listing failed: %w", err)
	}

	return signups, nil
}
