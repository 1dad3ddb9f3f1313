package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Movie   *MovieHandler
	Booking *BookingHandler
	Page    *PageHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, appName string, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Booking: NewBookingHandler(service.Booking, log),
		Page:    NewPageHandler(appName, log),
		Health:  NewHealthHandler(db, log),
	}
}

// handleServiceError maps usecase errors onto HTTP responses. Store errors are
// logged in full and reported to the client without detail.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Any("errors", validationErr.Fields),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInsufficientSeats):
		log.Warn(operation+" failed - insufficient seats",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeJSON reads a single JSON object into dst. On failure it returns the
// message and optional field errors to send back as a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) (string, map[string]string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err == nil {
		if dec.More() {
			return "Request body must contain a single JSON object", nil, false
		}
		return "", nil, true
	}

	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return "Validation failed", map[string]string{
			typeErr.Field: fmt.Sprintf("Must be of type %s", typeErr.Type.String()),
		}, false
	case errors.As(err, &maxBytesErr):
		return "Request body too large", nil, false
	case errors.Is(err, io.EOF):
		return "Request body is required", nil, false
	default:
		return "Invalid request body", nil, false
	}
}
