package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"courses/internal/api/v1/dto"
	"courses/internal/apperror"

	"github.com/rs/zerolog"
)

// writeJSON serialises v as JSON and writes it with the given status code
func writeJSON(w http.ResponseWriter, logger zerolog.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError maps err to its status and a client-safe body. Details stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, err error) {
	status := apperror.HTTPStatus(err)
	event := logger.Info()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Str("kind", apperror.KindOf(err).String()).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Request failed")

	writeJSON(w, logger, status, dto.ErrorResponseDTO{ErrorMsg: apperror.PublicMessage(err)})
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	// ids are int4 columns
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperror.Validation("Invalid "+name+": "+raw, err)
	}
	return int(v), nil
}
