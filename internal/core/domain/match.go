package domain

import (
	"errors"
	"time"
)

// MatchStatus represents the state of an established mentorship pairing.
type MatchStatus string

const (
	MatchActive MatchStatus = "ACTIVE"
	MatchEnded  MatchStatus = "ENDED"
)

var ErrMatchNotFound = errors.New("mentorship match not found")
var ErrDuplicateMatch = errors.New("active match already exists for this pair")
var ErrNoActiveMatch = errors.New("no active match between mentor and mentee")

// Match pairs a mentor with a mentee. Created when a mentor accepts a
// request, or directly by an admin.
type Match struct {
	ID        string      `json:"id"`
	MentorID  string      `json:"mentor_id"`
	MenteeID  string      `json:"mentee_id"`
	Status    MatchStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
