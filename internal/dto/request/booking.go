package request

import (
	"strings"

	"movie-booking/pkg/utils"
)

type CreateBookingRequest struct {
	MovieID      int64  `json:"movie_id" validate:"required,min=1"`
	CustomerName string `json:"customer_name" validate:"required,notblank,nocontrol,max=100"`
	SeatsBooked  int    `json:"seats_booked" validate:"required,min=1,max=2147483647"`
}

// Normalize trims surrounding whitespace from text fields.
func (r *CreateBookingRequest) Normalize() {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
}

// Validate returns field-level messages keyed by JSON name, or nil when the request is valid.
func (r *CreateBookingRequest) Validate() map[string]string {
	return utils.ValidateStruct(r)
}
