package service

import (
	"context"

	"github.com/MKhiriev/prelaunch-backend/models"
)

type mockUserRepository struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	countByEmailFunc    func(ctx context.Context, email string) (int64, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	return m.countByEmailFunc(ctx, email)
}

type mockSignupRepository struct {
	addEmailFunc     func(ctx context.Context, signup models.EmailSignup) error
	getAllEmailsFunc func(ctx context.Context) ([]models.EmailSignup, error)
}

func (m *mockSignupRepository) AddEmail(ctx context.Context, signup models.EmailSignup) error {
	return m.addEmailFunc(ctx, signup)
}

func (m *mockSignupRepository) GetAllEmails(ctx context.Context) ([]models.EmailSignup, error) {
	return m.getAllEmailsFunc(ctx)
}

type mockExamPaperRepository struct {
	addPaperFunc     func(ctx context.Context, paper models.ExamPaper) (models.ExamPaper, error)
	getAllPapersFunc func(ctx context.Context) ([]models.ExamPaper, error)
}

func (m *mockExamPaperRepository) AddPaper(ctx context.Context, paper models.ExamPaper) (models.ExamPaper, error) {
	return m.addPaperFunc(ctx, paper)
}

func (m *mockExamPaperRepository) GetAllPapers(ctx context.Context) ([]models.ExamPaper, error) {
	return m.getAllPapersFunc(ctx)
}
