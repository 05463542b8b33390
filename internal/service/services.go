package service

import (
	"github.com/MKhiriev/prelaunch-backend/internal/config"
	"github.com/MKhiriev/prelaunch-backend/internal/logger"
	"github.com/MKhiriev/prelaunch-backend/internal/store"
)

type Services struct {
	AuthService      AuthService
	SignupService    SignupService
	ExamPaperService ExamPaperService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg, logger),
		SignupService:    NewSignupService(storages.SignupRepository, logger),
		ExamPaperService: NewExamPaperService(storages.ExamPaperRepository, logger),
	}
}
