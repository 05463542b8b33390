package http

import (
	"net/http"

	"github.com/MKhiriev/prelaunch-backend/internal/utils"
)

// health reports process liveness. It deliberately touches nothing but the
// response writer: liveness must not depend on the persistence gateway.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

// root is the hello endpoint the landing page pings.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "Hello, World!"}, http.StatusOK)
}
