package handler

import (
	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createBookingRequest is the payload for POST /bookings. Date travels as a
// string ("2006-01-02" or RFC 3339) and is parsed by the handler; TimeSlot
// is a free-form label, not validated against a calendar.
type createBookingRequest struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required"`
	Service  string `json:"service"   validate:"required,oneof='Career Counselling' 'Educational Consultancy' 'Recruitment Services' 'Immigration Services'"`
	Date     string `json:"date"      validate:"required"`
	TimeSlot string `json:"time_slot" validate:"required"`
	Notes    string `json:"notes,omitempty"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed rejected completed cancelled"`
}

type bookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

type listBookingsResponse struct {
	Message  string                     `json:"message"`
	Bookings []*domain.BookingWithOwner `json:"bookings"`
	Total    int                        `json:"total"`
}

type listOwnBookingsResponse struct {
	Message  string            `json:"message"`
	Bookings []*domain.Booking `json:"bookings"`
	Total    int               `json:"total"`
}
