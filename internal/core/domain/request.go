package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of a mentorship request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestDeclined RequestStatus = "DECLINED"
)

var ErrRequestNotFound = errors.New("mentorship request not found")
var ErrDuplicateRequest = errors.New("pending request already exists for this mentor")
var ErrRequestNotPending = errors.New("mentorship request is no longer pending")

// MentorshipRequest is a mentee's application to be mentored. Only the
// addressed mentor may decide it, and only while it is still pending.
type MentorshipRequest struct {
	ID        string        `json:"id"`
	MenteeID  string        `json:"mentee_id"`
	MentorID  string        `json:"mentor_id"`
	Message   string        `json:"message,omitempty"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
