package ports

import (
	"context"
)

// MentorDashboard aggregates the numbers and lists shown on a mentor's
// landing page.
type MentorDashboard struct {
	PendingRequests  int64           `json:"pending_requests"`
	UpcomingSessions int64           `json:"upcoming_sessions"`
	TotalMentees     int64           `json:"total_mentees"`
	AverageRating    float64         `json:"average_rating"`
	RecentSessions   []SessionDetail `json:"recent_sessions"`
	PendingList      []RequestDetail `json:"pending_requests_list"`
}

// MenteeDashboard aggregates the numbers and lists shown on a mentee's
// landing page.
type MenteeDashboard struct {
	PendingRequests   int64           `json:"pending_requests"`
	UpcomingSessions  int64           `json:"upcoming_sessions"`
	TotalMentors      int64           `json:"total_mentors"`
	CompletedSessions int64           `json:"completed_sessions"`
	AvailableMentors  int64           `json:"available_mentors"`
	RecentSessions    []SessionDetail `json:"recent_sessions"`
	PendingList       []RequestDetail `json:"pending_requests_list"`
}

// DashboardService aggregates per-role dashboard views.
type DashboardService interface {
	Mentor(ctx context.Context, mentorID string) (*MentorDashboard, error)
	Mentee(ctx context.Context, menteeID string) (*MenteeDashboard, error)
}
