package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/utils"
	"github.com/MKhiriev/testgen/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) createConnection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var connection models.Connection
	if err := json.NewDecoder(r.Body).Decode(&connection); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.ConnectionService.CreateConnection(ctx, connection)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) getConnection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "connectionID"))
	if err != nil {
		http.Error(w, "invalid connection id", http.StatusBadRequest)
		return
	}

	connection, err := h.services.ConnectionService.GetConnection(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, connection, http.StatusOK)
}

func (h *Handler) listConnections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	connections, err := h.services.ConnectionService.ListConnections(ctx, r.URL.Query().Get("project_code"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if connections == nil {
		connections = []models.Connection{}
	}

	utils.WriteJSON(w, connections, http.StatusOK)
}
