package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

// LeadHandler handles HTTP requests for contact-form leads.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

type createLeadRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Service string `json:"service" validate:"required,oneof='Career Counselling' 'Educational Consultancy' 'Recruitment Services' 'Immigration Services'"`
	Message string `json:"message,omitempty"`
}

type updateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted converted closed"`
}

type leadResponse struct {
	Message string       `json:"message"`
	Lead    *domain.Lead `json:"lead"`
}

type listLeadsResponse struct {
	Message string         `json:"message"`
	Leads   []*domain.Lead `json:"leads"`
	Total   int            `json:"total"`
}

// Create handles POST /leads. No authentication required.
//
// @Summary      Submit a contact-form lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      createLeadRequest  true  "Lead details"
// @Success      201   {object}  leadResponse
// @Failure      400   {object}  errorResponse
// @Router       /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req createLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.service.Create(c.Request().Context(), ports.CreateLeadInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, leadResponse{
		Message: "Lead created successfully",
		Lead:    lead,
	})
}

// List handles GET /leads (admin only).
//
// @Summary      List all leads
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listLeadsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listLeadsResponse{
		Message: "Leads retrieved successfully",
		Leads:   leads,
		Total:   len(leads),
	})
}

// UpdateStatus handles PATCH /leads/:id (admin only).
//
// @Summary      Update a lead's status tag
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Lead id"
// @Param        body  body      updateLeadStatusRequest  true  "New status"
// @Success      200   {object}  leadResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /leads/{id} [patch]
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	var req updateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.LeadStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, leadResponse{
		Message: "Lead updated successfully",
		Lead:    lead,
	})
}
