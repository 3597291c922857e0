package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mentorloop/mentorship-api/internal/api/metrics"
	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

// SessionHandler implements the mentoring session lifecycle.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type scheduleSessionRequest struct {
	MenteeID    string    `json:"mentee_id"    validate:"required"`
	Title       string    `json:"title"        validate:"required"`
	Description string    `json:"description"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

type updateSessionRequest struct {
	Status string `json:"status" validate:"required,oneof=COMPLETED CANCELLED"`
	Rating int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// Schedule handles POST /api/sessions. Mentor-only; the pair must hold an
// active match.
//
// @Summary      Schedule a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      scheduleSessionRequest  true  "Session details"
// @Success      201   {object}  domain.Session
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Schedule(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := requireRole(identity, domain.RoleMentor); err != nil {
		return err
	}

	var req scheduleSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Schedule(c.Request().Context(), ports.ScheduleSessionInput{
		MentorID:    identity.ID,
		MenteeID:    req.MenteeID,
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return err
	}

	metrics.SessionsScheduledTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PATCH /api/sessions/:id — complete (optionally with the
// mentee's rating) or cancel a scheduled session.
//
// @Summary      Complete or cancel a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Session id"
// @Param        body  body      updateSessionRequest  true  "New status and optional rating"
// @Success      200   {object}  domain.Session
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/sessions/{id} [patch]
func (h *SessionHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), ports.UpdateSessionInput{
		SessionID: c.Param("id"),
		Identity:  identity,
		Status:    domain.SessionStatus(req.Status),
		Rating:    req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// List handles GET /api/sessions — the caller's own sessions.
//
// @Summary      List own sessions
// @Tags         sessions
// @Produce      json
// @Success      200  {array}   ports.SessionDetail
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/sessions [get]
func (h *SessionHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	details, err := h.service.ListForIdentity(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}
