package http

import (
	"net/http"

	"github.com/MKhiriev/testgen/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
