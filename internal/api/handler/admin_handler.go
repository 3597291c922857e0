package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

// AdminHandler implements the admin management surface. Every method
// re-checks the ADMIN role itself: the page gate does not cover /api/admin
// paths, so the handler boundary is the authorization boundary here.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type createUserRequest struct {
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Role     string   `json:"role"     validate:"required,oneof=ADMIN MENTOR MENTEE"`
	Name     string   `json:"name"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills"`
	Industry string   `json:"industry"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN MENTOR MENTEE"`
}

type createMatchRequest struct {
	MentorID string `json:"mentor_id" validate:"required"`
	MenteeID string `json:"mentee_id" validate:"required"`
}

func (h *AdminHandler) requireAdmin(c echo.Context) (domain.Identity, error) {
	identity, err := ctxIdentity(c)
	if err != nil {
		return domain.Identity{}, err
	}
	if err := requireRole(identity, domain.RoleAdmin); err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

// Stats handles GET /api/admin/stats.
//
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  ports.PlatformStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// ListUsers handles GET /api/admin/users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        role  query     string  false  "Filter by role"
// @Success      200   {array}   ports.UserDetail
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return err
	}

	users, err := h.service.ListUsers(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/admin/users.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account and initial profile"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Name:     req.Name,
		Bio:      req.Bio,
		Skills:   req.Skills,
		Industry: req.Industry,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateRole handles PUT /api/admin/users/:id/role. The target's outstanding
// session tokens keep their minted role until re-authentication.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/users/{id}/role [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateUserRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "role updated"})
}

// ListMatches handles GET /api/admin/matches.
//
// @Summary      List matches
// @Tags         admin
// @Produce      json
// @Success      200  {array}   ports.MatchDetail
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/matches [get]
func (h *AdminHandler) ListMatches(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return err
	}

	matches, err := h.service.ListMatches(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, matches)
}

// CreateMatch handles POST /api/admin/matches.
//
// @Summary      Create a match directly
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createMatchRequest  true  "Mentor and mentee ids"
// @Success      201   {object}  domain.Match
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/matches [post]
func (h *AdminHandler) CreateMatch(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return err
	}

	var req createMatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	match, err := h.service.CreateMatch(c.Request().Context(), req.MentorID, req.MenteeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, match)
}

// ListSessions handles GET /api/admin/sessions.
//
// @Summary      List all sessions
// @Tags         admin
// @Produce      json
// @Success      200  {array}   ports.SessionDetail
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/sessions [get]
func (h *AdminHandler) ListSessions(c echo.Context) error {
	if _, err := h.requireAdmin(c); err != nil {
		return err
	}

	sessions, err := h.service.ListSessions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}
