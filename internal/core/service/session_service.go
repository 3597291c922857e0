package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

type sessionService struct {
	sessions ports.SessionRepository
	matches  ports.MatchRepository
	users    ports.UserRepository
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewSessionService(
	sessions ports.SessionRepository,
	matches ports.MatchRepository,
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	log zerolog.Logger,
) ports.SessionService {
	return &sessionService{sessions: sessions, matches: matches, users: users, profiles: profiles, log: log}
}

func (s *sessionService) Schedule(ctx context.Context, input ports.ScheduleSessionInput) (*domain.Session, error) {
	if _, err := s.matches.FindActive(ctx, input.MentorID, input.MenteeID); err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return nil, domain.ErrNoActiveMatch
		}
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.sessions.Insert(ctx, &domain.Session{
		MentorID:    input.MentorID,
		MenteeID:    input.MenteeID,
		Title:       input.Title,
		Description: input.Description,
		ScheduledAt: input.ScheduledAt.UTC(),
		Status:      domain.SessionScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session: %w", err)
	}

	s.log.Info().
		Str("session_id", created.ID).
		Str("mentor_id", input.MentorID).
		Str("mentee_id", input.MenteeID).
		Time("scheduled_at", created.ScheduledAt).
		Msg("session scheduled")

	return created, nil
}

// Update completes or cancels a scheduled session. Either party may cancel;
// completion with a rating is reserved to the session's mentee. Admins may do
// both regardless of ownership.
func (s *sessionService) Update(ctx context.Context, input ports.UpdateSessionInput) (*domain.Session, error) {
	sess, err := s.sessions.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	caller := input.Identity
	if caller.Role != domain.RoleAdmin && caller.ID != sess.MentorID && caller.ID != sess.MenteeID {
		return nil, domain.ErrForbidden
	}

	if !sess.Status.CanTransitionTo(input.Status) {
		return nil, domain.ErrInvalidSessionTransition
	}

	rating := 0
	if input.Status == domain.SessionCompleted && input.Rating != 0 {
		if caller.Role != domain.RoleAdmin && caller.ID != sess.MenteeID {
			return nil, domain.ErrForbidden
		}
		if input.Rating < 1 || input.Rating > 5 {
			return nil, domain.ErrInvalidRating
		}
		rating = input.Rating
	}

	if err := s.sessions.SetStatus(ctx, sess.ID, input.Status, rating); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	sess.Status = input.Status
	if rating > 0 {
		sess.MenteeRating = rating
	}
	sess.UpdatedAt = time.Now().UTC()

	s.log.Info().
		Str("session_id", sess.ID).
		Str("status", string(sess.Status)).
		Msg("session updated")

	return sess, nil
}

func (s *sessionService) ListForIdentity(ctx context.Context, identity domain.Identity) ([]ports.SessionDetail, error) {
	var (
		rows []*domain.Session
		err  error
	)
	switch identity.Role {
	case domain.RoleMentor:
		rows, err = s.sessions.ListByMentor(ctx, identity.ID, 0)
	case domain.RoleMentee:
		rows, err = s.sessions.ListByMentee(ctx, identity.ID, 0)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	return sessionDetails(ctx, s.users, s.profiles, rows)
}

// sessionDetails joins sessions with both parties. Shared with the dashboard
// and admin services.
func sessionDetails(ctx context.Context, users ports.UserRepository, profiles ports.ProfileRepository, rows []*domain.Session) ([]ports.SessionDetail, error) {
	ids := make([]string, 0, len(rows)*2)
	for _, r := range rows {
		ids = append(ids, r.MentorID, r.MenteeID)
	}
	parties, err := loadParties(ctx, users, profiles, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ports.SessionDetail, 0, len(rows))
	for _, r := range rows {
		out = append(out, ports.SessionDetail{
			ID:           r.ID,
			Title:        r.Title,
			Description:  r.Description,
			ScheduledAt:  r.ScheduledAt,
			Status:       r.Status,
			MenteeRating: r.MenteeRating,
			Mentor:       parties[r.MentorID],
			Mentee:       parties[r.MenteeID],
		})
	}
	return out, nil
}
