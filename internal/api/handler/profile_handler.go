package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

// ProfileHandler implements self-service profile reads and writes. The
// profile acted on is always the caller's own; there is no way to address
// another user's profile through this handler.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type updateProfileRequest struct {
	Name     string `json:"name"     validate:"required"`
	Bio      string `json:"bio"`
	Skills   string `json:"skills"`
	Goals    string `json:"goals"`
	Industry string `json:"industry"`
}

// Get handles GET /api/profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles PUT /api/profile.
//
// @Summary      Create or update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields (skills as comma-separated text)"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Skills arrive as free text from the profile form.
	updated, err := h.service.Update(c.Request().Context(), &domain.Profile{
		UserID:   identity.ID,
		Name:     req.Name,
		Bio:      req.Bio,
		Skills:   domain.ParseSkills(req.Skills),
		Goals:    req.Goals,
		Industry: req.Industry,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
