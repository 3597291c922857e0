package ports

import (
	"context"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

// RequestRepository defines persistence operations for mentorship requests.
type RequestRepository interface {
	Insert(ctx context.Context, r *domain.MentorshipRequest) (*domain.MentorshipRequest, error)
	FindByID(ctx context.Context, id string) (*domain.MentorshipRequest, error)
	// FindPending returns the pending request between the pair, or
	// domain.ErrRequestNotFound when none exists.
	FindPending(ctx context.Context, menteeID, mentorID string) (*domain.MentorshipRequest, error)
	// ListByMentor returns requests addressed to the mentor, newest first,
	// optionally filtered by status ("" = all).
	ListByMentor(ctx context.Context, mentorID string, status domain.RequestStatus) ([]*domain.MentorshipRequest, error)
	ListByMentee(ctx context.Context, menteeID string, status domain.RequestStatus) ([]*domain.MentorshipRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	CountByMentor(ctx context.Context, mentorID string, status domain.RequestStatus) (int64, error)
	CountByMentee(ctx context.Context, menteeID string, status domain.RequestStatus) (int64, error)
}

// MatchRepository defines persistence operations for mentorship matches.
type MatchRepository interface {
	Insert(ctx context.Context, m *domain.Match) (*domain.Match, error)
	// FindActive returns the active match for the pair, or domain.ErrMatchNotFound.
	FindActive(ctx context.Context, mentorID, menteeID string) (*domain.Match, error)
	List(ctx context.Context) ([]*domain.Match, error)
	CountByMentor(ctx context.Context, mentorID string, status domain.MatchStatus) (int64, error)
	CountByMentee(ctx context.Context, menteeID string, status domain.MatchStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// SessionRepository defines persistence operations for mentoring sessions.
type SessionRepository interface {
	Insert(ctx context.Context, s *domain.Session) (*domain.Session, error)
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	// ListByMentor returns the mentor's sessions ordered by scheduled_at
	// descending; limit <= 0 means no limit.
	ListByMentor(ctx context.Context, mentorID string, limit int) ([]*domain.Session, error)
	ListByMentee(ctx context.Context, menteeID string, limit int) ([]*domain.Session, error)
	ListAll(ctx context.Context) ([]*domain.Session, error)
	// CompletedByMentor returns the mentor's completed sessions (for ratings).
	CompletedByMentor(ctx context.Context, mentorID string) ([]*domain.Session, error)
	// SetStatus updates the session status; rating is stored when > 0.
	SetStatus(ctx context.Context, id string, status domain.SessionStatus, rating int) error
	CountByMentor(ctx context.Context, mentorID string, status domain.SessionStatus) (int64, error)
	CountByMentee(ctx context.Context, menteeID string, status domain.SessionStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
}
