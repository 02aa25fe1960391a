package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for the booking ledger.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /bookings. The owner is always the authenticated
// caller; any user id supplied in the payload is ignored.
//
// @Summary      Book a consultation
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD or RFC 3339")
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		OwnerID:  claims.UserID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Service:  req.Service,
		Date:     date,
		TimeSlot: req.TimeSlot,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bookingResponse{
		Message: "Booking created successfully",
		Booking: booking,
	})
}

// ListAll handles GET /bookings (admin only): every booking with the owning
// user's name and email joined in.
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBookingsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBookingsResponse{
		Message:  "Bookings retrieved successfully",
		Bookings: bookings,
		Total:    len(bookings),
	})
}

// ListMine handles GET /bookings/user/my-bookings: the caller's own
// bookings. The filter uses the id from the verified session, so a caller
// can never read another user's bookings through this path.
//
// @Summary      List the caller's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOwnBookingsResponse
// @Failure      401  {object}  errorResponse
// @Router       /bookings/user/my-bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListForOwner(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listOwnBookingsResponse{
		Message:  "User bookings retrieved successfully",
		Bookings: bookings,
		Total:    len(bookings),
	})
}

// UpdateStatus handles PATCH /bookings/:id (admin only).
//
// @Summary      Update a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Booking id"
// @Param        body  body      updateBookingStatusRequest  true  "New status"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /bookings/{id} [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookingResponse{
		Message: "Booking updated successfully",
		Booking: booking,
	})
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
