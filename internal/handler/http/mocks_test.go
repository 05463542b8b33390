package http

import (
	"context"

	"github.com/MKhiriev/prelaunch-backend/internal/logger"
	"github.com/MKhiriev/prelaunch-backend/internal/service"
	"github.com/MKhiriev/prelaunch-backend/models"
)

type mockAuthService struct {
	registerUserFunc func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFunc        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFunc  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

type mockSignupService struct {
	addSignupFunc   func(ctx context.Context, req models.NotifyMeRequest) error
	listSignupsFunc func(ctx context.Context) ([]models.EmailSignup, error)
}

func (m *mockSignupService) AddSignup(ctx context.Context, req models.NotifyMeRequest) error {
	return m.addSignupFunc(ctx, req)
}

func (m *mockSignupService) ListSignups(ctx context.Context) ([]models.EmailSignup, error) {
	return m.listSignupsFunc(ctx)
}

type mockExamPaperService struct {
	submitPaperFunc func(ctx context.Context, req models.ExamPaperRequest) (models.ExamPaper, error)
	listPapersFunc  func(ctx context.Context) ([]models.ExamPaper, error)
}

func (m *mockExamPaperService) SubmitPaper(ctx context.Context, req models.ExamPaperRequest) (models.ExamPaper, error) {
	return m.submitPaperFunc(ctx, req)
}

func (m *mockExamPaperService) ListPapers(ctx context.Context) ([]models.ExamPaper, error) {
	return m.listPapersFunc(ctx)
}

// newTestHandler builds a Handler over the given mock services with logging
// silenced.
func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}
