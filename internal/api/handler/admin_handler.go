package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

// AdminHandler handles the admin back-office endpoints.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type listUsersResponse struct {
	Message string         `json:"message"`
	Users   []*domain.User `json:"users"`
	Total   int            `json:"total"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type statsResponse struct {
	Message string            `json:"message"`
	Stats   *domain.UserStats `json:"stats"`
}

// ListUsers handles GET /admin/users. Password hashes are excluded from the
// JSON encoding by the domain type.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Message: "Users retrieved successfully",
		Users:   users,
		Total:   len(users),
	})
}

// DeleteUser handles DELETE /admin/users/:id. Deleting the sole remaining
// admin fails with 400.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	user, err := h.service.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "User deleted successfully",
		User:    user,
	})
}

// Stats handles GET /admin/stats.
//
// @Summary      User statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statsResponse{
		Message: "Stats retrieved successfully",
		Stats:   stats,
	})
}
