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

func (h *Handler) notifyMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.NotifyMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.SignupService.AddSignup(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess}, http.StatusOK)
}

func (h *Handler) listSignups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	signups, err := h.services.SignupService.ListSignups(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during signup listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, signups, http.StatusOK)
}
