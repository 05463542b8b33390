package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/prelaunch-backend/internal/logger"
	"github.com/MKhiriev/prelaunch-backend/internal/service"
	"github.com/MKhiriev/prelaunch-backend/internal/utils"
	"github.com/MKhiriev/prelaunch-backend/models"
)

func (h *Handler) submitExamPaper(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ExamPaperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.ExamPaperService.SubmitPaper(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during exam paper submission")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  models.StatusSuccess,
		Message: "exam paper submitted",
	}, http.StatusOK)
}

func (h *Handler) listExamPapers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	papers, err := h.services.ExamPaperService.ListPapers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during exam paper listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ExamPaperListResponse{
		Status: models.StatusSuccess,
		Data:   papers,
	}, http.StatusOK)
}
