package store

import (
	"context"

	"github.com/MKhiriev/prelaunch-backend/models"
)

// UserRepository persists and looks up registered accounts.
type UserRepository interface {
	// CreateUser inserts a new account document. Returns
	// ErrEmailAlreadyExists if the unique email index rejects the insert.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// CountByEmail reports how many account documents carry the given email.
	// Used as the registration duplicate pre-check.
	CountByEmail(ctx context.Context, email string) (int64, error)
}

// SignupRepository persists prerelease notification signups.
type SignupRepository interface {
	AddEmail(ctx context.Context, signup models.EmailSignup) error
	GetAllEmails(ctx context.Context) ([]models.EmailSignup, error)
}

// ExamPaperRepository persists exam paper contributions.
type ExamPaperRepository interface {
	AddPaper(ctx context.Context, paper models.ExamPaper) (models.ExamPaper, error)
	GetAllPapers(ctx context.Context) ([]models.ExamPaper, error)
}
