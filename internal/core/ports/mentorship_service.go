package ports

import (
	"context"
	"time"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

// Party is the lightweight user view embedded in joined results.
type Party struct {
	ID     string   `json:"id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Bio    string   `json:"bio,omitempty"`
	Skills []string `json:"skills,omitempty"`
}

// MentorSummary is one row of the mentor directory shown to mentees.
type MentorSummary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
	Industry       string   `json:"industry"`
	AverageRating  float64  `json:"average_rating"`
	TotalSessions  int      `json:"total_sessions"`
	MatchingSkills []string `json:"matching_skills,omitempty"`
}

// ListMentorsInput carries the directory filters. MenteeID identifies the
// caller so shared skills can be highlighted.
type ListMentorsInput struct {
	MenteeID string
	Skill    string
	Industry string
}

// MentorService serves the mentor directory.
type MentorService interface {
	ListMentors(ctx context.Context, input ListMentorsInput) ([]MentorSummary, error)
}

// RequestDetail joins a mentorship request with both parties.
type RequestDetail struct {
	ID        string               `json:"id"`
	Status    domain.RequestStatus `json:"status"`
	Message   string               `json:"message,omitempty"`
	Mentee    Party                `json:"mentee"`
	Mentor    Party                `json:"mentor"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// DecideRequestInput carries a mentor's decision on a pending request.
type DecideRequestInput struct {
	RequestID string
	MentorID  string
	Accept    bool
}

// RequestService implements the mentorship request workflow.
type RequestService interface {
	// Create files a request from the mentee to the mentor. At most one
	// pending request may exist per pair.
	Create(ctx context.Context, menteeID, mentorID, message string) (*domain.MentorshipRequest, error)
	// ListForIdentity returns the caller's own requests: mentors see requests
	// addressed to them, mentees see requests they filed.
	ListForIdentity(ctx context.Context, identity domain.Identity) ([]RequestDetail, error)
	// Decide accepts or declines a pending request. Accepting creates an
	// active match. Only the addressed mentor may decide.
	Decide(ctx context.Context, input DecideRequestInput) (*domain.MentorshipRequest, error)
}

// ScheduleSessionInput carries the data to schedule a session.
type ScheduleSessionInput struct {
	MentorID    string
	MenteeID    string
	Title       string
	Description string
	ScheduledAt time.Time
}

// UpdateSessionInput carries a status change for a session. Rating is only
// meaningful when Status is COMPLETED and the caller is the session's mentee.
type UpdateSessionInput struct {
	SessionID string
	Identity  domain.Identity
	Status    domain.SessionStatus
	Rating    int
}

// SessionDetail joins a session with both parties.
type SessionDetail struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description,omitempty"`
	ScheduledAt  time.Time            `json:"scheduled_at"`
	Status       domain.SessionStatus `json:"status"`
	MenteeRating int                  `json:"mentee_rating,omitempty"`
	Mentor       Party                `json:"mentor"`
	Mentee       Party                `json:"mentee"`
}

// SessionService implements the session lifecycle.
type SessionService interface {
	// Schedule creates a session; the pair must have an active match.
	Schedule(ctx context.Context, input ScheduleSessionInput) (*domain.Session, error)
	// Update completes or cancels a scheduled session, enforcing owner checks.
	Update(ctx context.Context, input UpdateSessionInput) (*domain.Session, error)
	ListForIdentity(ctx context.Context, identity domain.Identity) ([]SessionDetail, error)
}
