package adaptor

import (
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if msg, fieldErrs, ok := decodeJSON(w, r, &req); !ok {
		h.log.Warn("Rejected booking body", zap.String("reason", msg), zap.Any("errors", fieldErrs))
		if len(fieldErrs) == 0 {
			utils.ResponseBadRequest(w, msg, nil)
			return
		}
		utils.ResponseBadRequest(w, msg, fieldErrs)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, booking)
}

// GetBookings handles GET /api/bookings
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.log.Debug("Unparseable booking ID", zap.Error(err))
		utils.ResponseNotFound(w, usecase.ErrBookingNotFound.Error())
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// GetMovieBookings handles GET /api/movies/{id}/bookings
func (h *BookingHandler) GetMovieBookings(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.log.Debug("Unparseable movie ID", zap.Error(err))
		utils.ResponseNotFound(w, usecase.ErrMovieNotFound.Error())
		return
	}

	bookings, err := h.service.GetBookingsByMovie(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetCustomerBookings handles GET /api/bookings/customer/{name}
func (h *BookingHandler) GetCustomerBookings(w http.ResponseWriter, r *http.Request) {
	// URLParam is already percent-decoded.
	bookings, err := h.service.GetBookingsByCustomer(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		handleServiceError(w, h.log, err, "get customer bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}
