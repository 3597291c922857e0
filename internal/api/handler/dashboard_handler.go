package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

// DashboardHandler serves the per-role dashboard aggregates. Each endpoint
// re-checks the caller's role even though the route group already gates it.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Mentor handles GET /api/mentor/dashboard.
//
// @Summary      Mentor dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.MentorDashboard
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/mentor/dashboard [get]
func (h *DashboardHandler) Mentor(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := requireRole(identity, domain.RoleMentor); err != nil {
		return err
	}

	d, err := h.service.Mentor(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Mentee handles GET /api/mentee/dashboard.
//
// @Summary      Mentee dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.MenteeDashboard
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/mentee/dashboard [get]
func (h *DashboardHandler) Mentee(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := requireRole(identity, domain.RoleMentee); err != nil {
		return err
	}

	d, err := h.service.Mentee(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}
