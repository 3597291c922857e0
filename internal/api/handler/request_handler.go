package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorloop/mentorship-api/internal/api/metrics"
	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

// RequestHandler implements the mentorship request workflow.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type createRequestRequest struct {
	MentorID string `json:"mentor_id" validate:"required"`
	Message  string `json:"message"`
}

type decideRequestRequest struct {
	Action string `json:"action" validate:"required,oneof=accept decline"`
}

// Create handles POST /api/requests. Mentee-only.
//
// @Summary      Send a mentorship request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      createRequestRequest  true  "Target mentor and optional message"
// @Success      201   {object}  domain.MentorshipRequest
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := requireRole(identity, domain.RoleMentee); err != nil {
		return err
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), identity.ID, req.MentorID, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /api/requests — the caller's own requests, on whichever
// side of the pairing they stand.
//
// @Summary      List own mentorship requests
// @Tags         requests
// @Produce      json
// @Success      200  {array}   ports.RequestDetail
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/requests [get]
func (h *RequestHandler) List(c echo.Context) error {
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

// Decide handles PATCH /api/requests/:id. Mentor-only; the service further
// verifies the request is addressed to the caller.
//
// @Summary      Accept or decline a mentorship request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Request id"
// @Param        body  body      decideRequestRequest  true  "Decision"
// @Success      200   {object}  domain.MentorshipRequest
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/requests/{id} [patch]
func (h *RequestHandler) Decide(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := requireRole(identity, domain.RoleMentor); err != nil {
		return err
	}

	var req decideRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	decided, err := h.service.Decide(c.Request().Context(), ports.DecideRequestInput{
		RequestID: c.Param("id"),
		MentorID:  identity.ID,
		Accept:    req.Action == "accept",
	})
	if err != nil {
		return err
	}

	if decided.Status == domain.RequestAccepted {
		metrics.RequestsDecidedTotal.WithLabelValues("accepted").Inc()
	} else {
		metrics.RequestsDecidedTotal.WithLabelValues("declined").Inc()
	}

	return c.JSON(http.StatusOK, decided)
}
