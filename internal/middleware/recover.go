package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"courses/internal/api/v1/dto"
	"courses/internal/apperror"

	"github.com/rs/zerolog"
)

// RecoverMiddleware turns a panicking handler into a 500 with the generic
// internal error body. A response already under way is left as it is.
func RecoverMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &statusRecorder{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err := apperror.Internal("handler panic", fmt.Errorf("%v", rec))
				logger.Error().
					Err(err).
					Str("request_id", RequestIDFromContext(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bool("response_started", rw.status != 0).
					Msg("Recovered from panic")

				if rw.status != 0 {
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(dto.ErrorResponseDTO{ErrorMsg: apperror.PublicMessage(err)})
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
