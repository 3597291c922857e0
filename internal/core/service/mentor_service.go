package service

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

// MentorService serves the mentor directory mentees browse.
type mentorService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	sessions ports.SessionRepository
	log      zerolog.Logger
}

func NewMentorService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	sessions ports.SessionRepository,
	log zerolog.Logger,
) ports.MentorService {
	return &mentorService{users: users, profiles: profiles, sessions: sessions, log: log}
}

// ListMentors returns every mentor with profile, rating stats, and the skills
// shared with the calling mentee, optionally filtered by skill and industry.
func (s *mentorService) ListMentors(ctx context.Context, input ports.ListMentorsInput) ([]ports.MentorSummary, error) {
	mentors, err := s.users.List(ctx, domain.RoleMentor)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(mentors))
	for _, m := range mentors {
		ids = append(ids, m.ID)
	}
	profileByID, err := s.profiles.FindByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var menteeSkills []string
	if input.MenteeID != "" {
		if own, err := s.profiles.FindByUserID(ctx, input.MenteeID); err == nil {
			menteeSkills = own.Skills
		}
	}

	out := make([]ports.MentorSummary, 0, len(mentors))
	for _, m := range mentors {
		summary := ports.MentorSummary{ID: m.ID, Skills: []string{}}
		if p, ok := profileByID[m.ID]; ok {
			summary.Name = p.Name
			summary.Bio = p.Bio
			summary.Industry = p.Industry
			if p.Skills != nil {
				summary.Skills = p.Skills
			}
		}

		if !matchesFilter(summary, input) {
			continue
		}

		completed, err := s.sessions.CompletedByMentor(ctx, m.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("mentor_id", m.ID).Msg("failed to load session stats")
		} else {
			summary.TotalSessions = len(completed)
			summary.AverageRating = averageRating(completed)
		}

		summary.MatchingSkills = domain.MatchingSkills(summary.Skills, menteeSkills)
		out = append(out, summary)
	}

	return out, nil
}

func matchesFilter(m ports.MentorSummary, input ports.ListMentorsInput) bool {
	if input.Industry != "" && !strings.EqualFold(m.Industry, input.Industry) {
		return false
	}
	if input.Skill != "" {
		for _, s := range m.Skills {
			if strings.EqualFold(s, input.Skill) {
				return true
			}
		}
		return false
	}
	return true
}

// averageRating averages the mentee ratings of completed sessions, rounded to
// one decimal. Sessions completed without a rating are excluded.
func averageRating(sessions []*domain.Session) float64 {
	var sum, n int
	for _, s := range sessions {
		if s.MenteeRating > 0 {
			sum += s.MenteeRating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}
