package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// stubUserRepo is an in-memory UserRepository.
type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("user_%d", r.seq)
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if role == "" || u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if role == "" || u.Role == role {
			n++
		}
	}
	return n, nil
}

// stubProfileRepo is an in-memory ProfileRepository.
type stubProfileRepo struct {
	profiles map[string]*domain.Profile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) FindByUserIDs(_ context.Context, userIDs []string) (map[string]*domain.Profile, error) {
	out := make(map[string]*domain.Profile, len(userIDs))
	for _, id := range userIDs {
		if p, ok := r.profiles[id]; ok {
			clone := *p
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubProfileRepo) Upsert(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	clone := *profile
	r.profiles[profile.UserID] = &clone
	copy := clone
	return &copy, nil
}

// stubRequestRepo is an in-memory RequestRepository.
type stubRequestRepo struct {
	requests map[string]*domain.MentorshipRequest
	seq      int
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{requests: make(map[string]*domain.MentorshipRequest)}
}

func (r *stubRequestRepo) Insert(_ context.Context, req *domain.MentorshipRequest) (*domain.MentorshipRequest, error) {
	clone := *req
	if clone.ID == "" {
		r.seq++
		clone.ID = fmt.Sprintf("req_%d", r.seq)
	}
	stored := clone
	r.requests[clone.ID] = &stored
	return &clone, nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.MentorshipRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *stubRequestRepo) FindPending(_ context.Context, menteeID, mentorID string) (*domain.MentorshipRequest, error) {
	for _, req := range r.requests {
		if req.MenteeID == menteeID && req.MentorID == mentorID && req.Status == domain.RequestPending {
			clone := *req
			return &clone, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (r *stubRequestRepo) ListByMentor(_ context.Context, mentorID string, status domain.RequestStatus) ([]*domain.MentorshipRequest, error) {
	return r.list(func(req *domain.MentorshipRequest) bool {
		return req.MentorID == mentorID && (status == "" || req.Status == status)
	}), nil
}

func (r *stubRequestRepo) ListByMentee(_ context.Context, menteeID string, status domain.RequestStatus) ([]*domain.MentorshipRequest, error) {
	return r.list(func(req *domain.MentorshipRequest) bool {
		return req.MenteeID == menteeID && (status == "" || req.Status == status)
	}), nil
}

func (r *stubRequestRepo) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) error {
	req, ok := r.requests[id]
	if !ok {
		return domain.ErrRequestNotFound
	}
	req.Status = status
	return nil
}

func (r *stubRequestRepo) CountByMentor(_ context.Context, mentorID string, status domain.RequestStatus) (int64, error) {
	return int64(len(r.list(func(req *domain.MentorshipRequest) bool {
		return req.MentorID == mentorID && (status == "" || req.Status == status)
	}))), nil
}

func (r *stubRequestRepo) CountByMentee(_ context.Context, menteeID string, status domain.RequestStatus) (int64, error) {
	return int64(len(r.list(func(req *domain.MentorshipRequest) bool {
		return req.MenteeID == menteeID && (status == "" || req.Status == status)
	}))), nil
}

func (r *stubRequestRepo) list(keep func(*domain.MentorshipRequest) bool) []*domain.MentorshipRequest {
	var out []*domain.MentorshipRequest
	for _, req := range r.requests {
		if keep(req) {
			clone := *req
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// stubMatchRepo is an in-memory MatchRepository.
type stubMatchRepo struct {
	matches map[string]*domain.Match
	seq     int
}

func newStubMatchRepo() *stubMatchRepo {
	return &stubMatchRepo{matches: make(map[string]*domain.Match)}
}

func (r *stubMatchRepo) Insert(_ context.Context, m *domain.Match) (*domain.Match, error) {
	clone := *m
	if clone.ID == "" {
		r.seq++
		clone.ID = fmt.Sprintf("match_%d", r.seq)
	}
	stored := clone
	r.matches[clone.ID] = &stored
	return &clone, nil
}

func (r *stubMatchRepo) FindActive(_ context.Context, mentorID, menteeID string) (*domain.Match, error) {
	for _, m := range r.matches {
		if m.MentorID == mentorID && m.MenteeID == menteeID && m.Status == domain.MatchActive {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (r *stubMatchRepo) List(_ context.Context) ([]*domain.Match, error) {
	var out []*domain.Match
	for _, m := range r.matches {
		clone := *m
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubMatchRepo) CountByMentor(_ context.Context, mentorID string, status domain.MatchStatus) (int64, error) {
	var n int64
	for _, m := range r.matches {
		if m.MentorID == mentorID && (status == "" || m.Status == status) {
			n++
		}
	}
	return n, nil
}

func (r *stubMatchRepo) CountByMentee(_ context.Context, menteeID string, status domain.MatchStatus) (int64, error) {
	var n int64
	for _, m := range r.matches {
		if m.MenteeID == menteeID && (status == "" || m.Status == status) {
			n++
		}
	}
	return n, nil
}

func (r *stubMatchRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.matches)), nil
}

// stubSessionRepo is an in-memory SessionRepository.
type stubSessionRepo struct {
	sessions map[string]*domain.Session
	seq      int
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Insert(_ context.Context, s *domain.Session) (*domain.Session, error) {
	clone := *s
	if clone.ID == "" {
		r.seq++
		clone.ID = fmt.Sprintf("session_%d", r.seq)
	}
	stored := clone
	r.sessions[clone.ID] = &stored
	return &clone, nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id string) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) ListByMentor(_ context.Context, mentorID string, limit int) ([]*domain.Session, error) {
	return r.list(limit, func(s *domain.Session) bool { return s.MentorID == mentorID }), nil
}

func (r *stubSessionRepo) ListByMentee(_ context.Context, menteeID string, limit int) ([]*domain.Session, error) {
	return r.list(limit, func(s *domain.Session) bool { return s.MenteeID == menteeID }), nil
}

func (r *stubSessionRepo) ListAll(_ context.Context) ([]*domain.Session, error) {
	return r.list(0, func(*domain.Session) bool { return true }), nil
}

func (r *stubSessionRepo) CompletedByMentor(_ context.Context, mentorID string) ([]*domain.Session, error) {
	return r.list(0, func(s *domain.Session) bool {
		return s.MentorID == mentorID && s.Status == domain.SessionCompleted
	}), nil
}

func (r *stubSessionRepo) SetStatus(_ context.Context, id string, status domain.SessionStatus, rating int) error {
	s, ok := r.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.Status = status
	if rating > 0 {
		s.MenteeRating = rating
	}
	return nil
}

func (r *stubSessionRepo) CountByMentor(_ context.Context, mentorID string, status domain.SessionStatus) (int64, error) {
	return int64(len(r.list(0, func(s *domain.Session) bool {
		return s.MentorID == mentorID && (status == "" || s.Status == status)
	}))), nil
}

func (r *stubSessionRepo) CountByMentee(_ context.Context, menteeID string, status domain.SessionStatus) (int64, error) {
	return int64(len(r.list(0, func(s *domain.Session) bool {
		return s.MenteeID == menteeID && (status == "" || s.Status == status)
	}))), nil
}

func (r *stubSessionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.sessions)), nil
}

func (r *stubSessionRepo) list(limit int, keep func(*domain.Session) bool) []*domain.Session {
	var out []*domain.Session
	for _, s := range r.sessions {
		if keep(s) {
			clone := *s
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.After(out[j].ScheduledAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// stubLimiter counts failures in memory.
type stubLimiter struct {
	failures map[string]int
	max      int
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{failures: make(map[string]int), max: max}
}

func (l *stubLimiter) TooManyFailures(_ context.Context, email string) (bool, error) {
	return l.failures[email] >= l.max, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Clear(_ context.Context, email string) error {
	delete(l.failures, email)
	return nil
}
