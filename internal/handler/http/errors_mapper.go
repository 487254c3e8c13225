package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/service"
	"github.com/MKhiriev/testgen/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrValidationInvalidName:        http.StatusBadRequest,
	service.ErrValidationNoScores:           http.StatusBadRequest,
	service.ErrValidationUnknownCategory:    http.StatusBadRequest,
	service.ErrValidationUnknownFilterField: http.StatusBadRequest,
	service.ErrValidationUnknownGroupBy:     http.StatusBadRequest,
	service.ErrValidationUnknownScoreType:   http.StatusBadRequest,

	store.ErrProjectNotFound:    http.StatusNotFound,
	store.ErrDashboardNotFound:  http.StatusNotFound,
	store.ErrConnectionNotFound: http.StatusNotFound,
	store.ErrNameAlreadyExists:  http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps a service or store error onto its HTTP status and writes
// the response. Internal errors respond with the generic status text so
// driver details never leak to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	log.Err(err).Int("status", status).Msg("request failed")

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	http.Error(w, message, status)
}
