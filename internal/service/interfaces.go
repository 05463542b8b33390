// Package service contains the business logic of the application: account
// registration and login, bearer-token lifecycle, signup collection, and
// exam paper contributions. Services validate incoming requests before any
// repository call and translate storage errors for the transport layer.
package service

import (
	"context"

	"github.com/MKhiriev/prelaunch-backend/models"
)

// AuthService handles account registration, credential verification, and
// bearer-token issuance/validation.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SignupService collects prerelease notification signups.
type SignupService interface {
	AddSignup(ctx context.Context, req models.NotifyMeRequest) error
	ListSignups(ctx context.Context) ([]models.EmailSignup, error)
}

// ExamPaperService accepts and lists exam paper contributions.
type ExamPaperService interface {
	SubmitPaper(ctx context.Context, req models.ExamPaperRequest) (models.ExamPaper, error)
	ListPapers(ctx context.Context) ([]models.ExamPaper, error)
}
