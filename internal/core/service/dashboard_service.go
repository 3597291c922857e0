package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

const recentSessionsLimit = 5

type dashboardService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	requests ports.RequestRepository
	matches  ports.MatchRepository
	sessions ports.SessionRepository
	log      zerolog.Logger
}

func NewDashboardService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	requests ports.RequestRepository,
	matches ports.MatchRepository,
	sessions ports.SessionRepository,
	log zerolog.Logger,
) ports.DashboardService {
	return &dashboardService{
		users:    users,
		profiles: profiles,
		requests: requests,
		matches:  matches,
		sessions: sessions,
		log:      log,
	}
}

func (s *dashboardService) Mentor(ctx context.Context, mentorID string) (*ports.MentorDashboard, error) {
	d := &ports.MentorDashboard{
		RecentSessions: []ports.SessionDetail{},
		PendingList:    []ports.RequestDetail{},
	}

	var err error
	if d.PendingRequests, err = s.requests.CountByMentor(ctx, mentorID, domain.RequestPending); err != nil {
		return nil, err
	}
	if d.UpcomingSessions, err = s.sessions.CountByMentor(ctx, mentorID, domain.SessionScheduled); err != nil {
		return nil, err
	}
	if d.TotalMentees, err = s.matches.CountByMentor(ctx, mentorID, domain.MatchActive); err != nil {
		return nil, err
	}

	completed, err := s.sessions.CompletedByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	d.AverageRating = averageRating(completed)

	recent, err := s.sessions.ListByMentor(ctx, mentorID, recentSessionsLimit)
	if err != nil {
		return nil, err
	}
	if d.RecentSessions, err = sessionDetails(ctx, s.users, s.profiles, recent); err != nil {
		return nil, err
	}

	pending, err := s.requests.ListByMentor(ctx, mentorID, domain.RequestPending)
	if err != nil {
		return nil, err
	}
	if d.PendingList, err = s.requestDetails(ctx, pending); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *dashboardService) Mentee(ctx context.Context, menteeID string) (*ports.MenteeDashboard, error) {
	d := &ports.MenteeDashboard{
		RecentSessions: []ports.SessionDetail{},
		PendingList:    []ports.RequestDetail{},
	}

	var err error
	if d.PendingRequests, err = s.requests.CountByMentee(ctx, menteeID, domain.RequestPending); err != nil {
		return nil, err
	}
	if d.UpcomingSessions, err = s.sessions.CountByMentee(ctx, menteeID, domain.SessionScheduled); err != nil {
		return nil, err
	}
	if d.TotalMentors, err = s.matches.CountByMentee(ctx, menteeID, domain.MatchActive); err != nil {
		return nil, err
	}
	if d.CompletedSessions, err = s.sessions.CountByMentee(ctx, menteeID, domain.SessionCompleted); err != nil {
		return nil, err
	}
	if d.AvailableMentors, err = s.users.CountByRole(ctx, domain.RoleMentor); err != nil {
		return nil, err
	}

	recent, err := s.sessions.ListByMentee(ctx, menteeID, recentSessionsLimit)
	if err != nil {
		return nil, err
	}
	if d.RecentSessions, err = sessionDetails(ctx, s.users, s.profiles, recent); err != nil {
		return nil, err
	}

	pending, err := s.requests.ListByMentee(ctx, menteeID, domain.RequestPending)
	if err != nil {
		return nil, err
	}
	if d.PendingList, err = s.requestDetails(ctx, pending); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *dashboardService) requestDetails(ctx context.Context, rows []*domain.MentorshipRequest) ([]ports.RequestDetail, error) {
	ids := make([]string, 0, len(rows)*2)
	for _, r := range rows {
		ids = append(ids, r.MenteeID, r.MentorID)
	}
	parties, err := loadParties(ctx, s.users, s.profiles, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ports.RequestDetail, 0, len(rows))
	for _, r := range rows {
		out = append(out, ports.RequestDetail{
			ID:        r.ID,
			Status:    r.Status,
			Message:   r.Message,
			Mentee:    parties[r.MenteeID],
			Mentor:    parties[r.MentorID],
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}
