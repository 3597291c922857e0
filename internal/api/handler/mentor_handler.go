package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

// MentorHandler serves the mentor directory.
type MentorHandler struct {
	service ports.MentorService
}

func NewMentorHandler(service ports.MentorService) *MentorHandler {
	return &MentorHandler{service: service}
}

// List handles GET /api/mentors. Mentee-only: the directory exists for
// mentees to find a mentor.
//
// @Summary      Browse mentors
// @Tags         mentors
// @Produce      json
// @Param        skill     query     string  false  "Filter by skill (case-insensitive)"
// @Param        industry  query     string  false  "Filter by industry (case-insensitive)"
// @Success      200       {array}   ports.MentorSummary
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Router       /api/mentors [get]
func (h *MentorHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := requireRole(identity, domain.RoleMentee); err != nil {
		return err
	}

	mentors, err := h.service.ListMentors(c.Request().Context(), ports.ListMentorsInput{
		MenteeID: identity.ID,
		Skill:    c.QueryParam("skill"),
		Industry: c.QueryParam("industry"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mentors)
}
