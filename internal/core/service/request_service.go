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

type requestService struct {
	requests ports.RequestRepository
	matches  ports.MatchRepository
	users    ports.UserRepository
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewRequestService(
	requests ports.RequestRepository,
	matches ports.MatchRepository,
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	log zerolog.Logger,
) ports.RequestService {
	return &requestService{requests: requests, matches: matches, users: users, profiles: profiles, log: log}
}

func (s *requestService) Create(ctx context.Context, menteeID, mentorID, message string) (*domain.MentorshipRequest, error) {
	mentor, err := s.users.FindByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor.Role != domain.RoleMentor {
		return nil, domain.ErrUserNotFound
	}

	if _, err := s.requests.FindPending(ctx, menteeID, mentorID); err == nil {
		return nil, domain.ErrDuplicateRequest
	} else if !errors.Is(err, domain.ErrRequestNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.requests.Insert(ctx, &domain.MentorshipRequest{
		MenteeID:  menteeID,
		MentorID:  mentorID,
		Message:   message,
		Status:    domain.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("request_id", created.ID).
		Str("mentee_id", menteeID).
		Str("mentor_id", mentorID).
		Msg("mentorship request created")

	return created, nil
}

func (s *requestService) ListForIdentity(ctx context.Context, identity domain.Identity) ([]ports.RequestDetail, error) {
	var (
		rows []*domain.MentorshipRequest
		err  error
	)
	switch identity.Role {
	case domain.RoleMentor:
		rows, err = s.requests.ListByMentor(ctx, identity.ID, "")
	case domain.RoleMentee:
		rows, err = s.requests.ListByMentee(ctx, identity.ID, "")
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	return s.toDetails(ctx, rows)
}

// Decide accepts or declines a pending request. Accepting also creates an
// active match; the decision is final either way.
func (s *requestService) Decide(ctx context.Context, input ports.DecideRequestInput) (*domain.MentorshipRequest, error) {
	req, err := s.requests.FindByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if req.MentorID != input.MentorID {
		return nil, domain.ErrForbidden
	}
	if req.Status != domain.RequestPending {
		return nil, domain.ErrRequestNotPending
	}

	status := domain.RequestDeclined
	if input.Accept {
		status = domain.RequestAccepted
	}

	if err := s.requests.UpdateStatus(ctx, req.ID, status); err != nil {
		return nil, fmt.Errorf("decide request: %w", err)
	}
	req.Status = status
	req.UpdatedAt = time.Now().UTC()

	if input.Accept {
		if _, err := s.matches.FindActive(ctx, req.MentorID, req.MenteeID); err == nil {
			s.log.Debug().Str("request_id", req.ID).Msg("match already active, skipping create")
		} else if errors.Is(err, domain.ErrMatchNotFound) {
			if _, err := s.matches.Insert(ctx, &domain.Match{
				MentorID:  req.MentorID,
				MenteeID:  req.MenteeID,
				Status:    domain.MatchActive,
				CreatedAt: time.Now().UTC(),
			}); err != nil {
				return nil, fmt.Errorf("decide request: create match: %w", err)
			}
		} else {
			return nil, err
		}
	}

	s.log.Info().
		Str("request_id", req.ID).
		Str("status", string(status)).
		Msg("mentorship request decided")

	return req, nil
}

func (s *requestService) toDetails(ctx context.Context, rows []*domain.MentorshipRequest) ([]ports.RequestDetail, error) {
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
