package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// bookingStatuses is the closed set of statuses accepted on update. Any
// status may follow any other; only confirmed and rejected carry a
// notification side effect.
var bookingStatuses = map[BookingStatus]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusRejected:  {},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Services offered for consultation bookings and leads.
const (
	ServiceCareerCounselling      = "Career Counselling"
	ServiceEducationalConsultancy = "Educational Consultancy"
	ServiceRecruitment            = "Recruitment Services"
	ServiceImmigration            = "Immigration Services"
)

var services = map[string]struct{}{
	ServiceCareerCounselling:      {},
	ServiceEducationalConsultancy: {},
	ServiceRecruitment:            {},
	ServiceImmigration:            {},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrValidation = errors.New("validation failed")
var ErrForbidden = errors.New("access forbidden")
var ErrNotificationFailed = errors.New("notification send failed")

// IsValid reports whether s belongs to the booking status enumeration.
func (s BookingStatus) IsValid() bool {
	_, ok := bookingStatuses[s]
	return ok
}

// NotifiesOwner reports whether a transition into s must email the booking's
// contact before the request completes.
func (s BookingStatus) NotifiesOwner() bool {
	return s == StatusConfirmed || s == StatusRejected
}

// IsValidService reports whether service belongs to the fixed service set.
func IsValidService(service string) bool {
	_, ok := services[service]
	return ok
}

// Booking is the core aggregate root. Name, Email and Phone are a contact
// snapshot captured at creation; later edits to the owning User record do
// not alter them. UserID is set once at creation and never reassigned.
type Booking struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Service   string        `json:"service"`
	Date      time.Time     `json:"date"`
	TimeSlot  string        `json:"time_slot"`
	Notes     string        `json:"notes,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BookingWithOwner joins the owning user's current name and email onto a
// booking. Read-only projection used by the admin list.
type BookingWithOwner struct {
	Booking
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}
