package domain

import (
	"errors"
	"time"
)

// SessionStatus represents the lifecycle state of a mentoring session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "SCHEDULED"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionCancelled SessionStatus = "CANCELLED"
)

// validSessionTransitions defines the allowed state machine transitions.
var validSessionTransitions = map[SessionStatus][]SessionStatus{
	SessionScheduled: {SessionCompleted, SessionCancelled},
}

var ErrSessionNotFound = errors.New("session not found")
var ErrInvalidSessionTransition = errors.New("invalid session status transition")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	for _, allowed := range validSessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Session is a scheduled meeting between a matched mentor and mentee.
// MenteeRating is set by the mentee when the session completes (1–5).
type Session struct {
	ID           string        `json:"id"`
	MentorID     string        `json:"mentor_id"`
	MenteeID     string        `json:"mentee_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	ScheduledAt  time.Time     `json:"scheduled_at"`
	Status       SessionStatus `json:"status"`
	MenteeRating int           `json:"mentee_rating,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
