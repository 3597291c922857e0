package service

import (
	"context"
	"testing"
	"time"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

type sessionFixture struct {
	users    *stubUserRepo
	matches  *stubMatchRepo
	sessions *stubSessionRepo
	svc      ports.SessionService
	mentor   *domain.User
	mentee   *domain.User
}

func newSessionFixture(t *testing.T, matched bool) *sessionFixture {
	t.Helper()
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	matches := newStubMatchRepo()
	sessions := newStubSessionRepo()

	mentor, err := users.Create(context.Background(), &domain.User{Email: "mentor@example.com", Role: domain.RoleMentor})
	if err != nil {
		t.Fatalf("create mentor: %v", err)
	}
	mentee, err := users.Create(context.Background(), &domain.User{Email: "mentee@example.com", Role: domain.RoleMentee})
	if err != nil {
		t.Fatalf("create mentee: %v", err)
	}
	if matched {
		if _, err := matches.Insert(context.Background(), &domain.Match{
			MentorID: mentor.ID, MenteeID: mentee.ID, Status: domain.MatchActive, CreatedAt: time.Now(),
		}); err != nil {
			t.Fatalf("insert match: %v", err)
		}
	}

	return &sessionFixture{
		users:    users,
		matches:  matches,
		sessions: sessions,
		svc:      NewSessionService(sessions, matches, users, profiles, testLogger()),
		mentor:   mentor,
		mentee:   mentee,
	}
}

func (f *sessionFixture) schedule(t *testing.T) *domain.Session {
	t.Helper()
	sess, err := f.svc.Schedule(context.Background(), ports.ScheduleSessionInput{
		MentorID:    f.mentor.ID,
		MenteeID:    f.mentee.ID,
		Title:       "kickoff",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	return sess
}

func TestSessionService_Schedule(t *testing.T) {
	f := newSessionFixture(t, true)

	sess := f.schedule(t)
	if sess.Status != domain.SessionScheduled {
		t.Fatalf("expected SCHEDULED, got %s", sess.Status)
	}
	if sess.MentorID != f.mentor.ID || sess.MenteeID != f.mentee.ID {
		t.Fatalf("unexpected parties: %+v", sess)
	}
}

func TestSessionService_Schedule_RequiresActiveMatch(t *testing.T) {
	f := newSessionFixture(t, false)

	if _, err := f.svc.Schedule(context.Background(), ports.ScheduleSessionInput{
		MentorID: f.mentor.ID, MenteeID: f.mentee.ID, Title: "kickoff", ScheduledAt: time.Now(),
	}); err != domain.ErrNoActiveMatch {
		t.Fatalf("expected ErrNoActiveMatch, got %v", err)
	}
}

func TestSessionService_Update_CompleteWithRating(t *testing.T) {
	f := newSessionFixture(t, true)
	sess := f.schedule(t)

	updated, err := f.svc.Update(context.Background(), ports.UpdateSessionInput{
		SessionID: sess.ID,
		Status:    domain.SessionCompleted,
		Rating:    5,
		Identity:  domain.Identity{ID: f.mentee.ID, Role: domain.RoleMentee},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.SessionCompleted {
		t.Fatalf("expected COMPLETED, got %s", updated.Status)
	}
	if updated.MenteeRating != 5 {
		t.Fatalf("expected rating 5, got %d", updated.MenteeRating)
	}
}

func TestSessionService_Update_MentorCannotRate(t *testing.T) {
	f := newSessionFixture(t, true)
	sess := f.schedule(t)

	if _, err := f.svc.Update(context.Background(), ports.UpdateSessionInput{
		SessionID: sess.ID,
		Status:    domain.SessionCompleted,
		Rating:    5,
		Identity:  domain.Identity{ID: f.mentor.ID, Role: domain.RoleMentor},
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSessionService_Update_RatingBounds(t *testing.T) {
	f := newSessionFixture(t, true)

	for _, rating := range []int{-1, 6} {
		sess := f.schedule(t)
		if _, err := f.svc.Update(context.Background(), ports.UpdateSessionInput{
			SessionID: sess.ID,
			Status:    domain.SessionCompleted,
			Rating:    rating,
			Identity:  domain.Identity{ID: f.mentee.ID, Role: domain.RoleMentee},
		}); err != domain.ErrInvalidRating {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestSessionService_Update_EitherPartyMayCancel(t *testing.T) {
	f := newSessionFixture(t, true)

	for _, identity := range []domain.Identity{
		{ID: f.mentor.ID, Role: domain.RoleMentor},
		{ID: f.mentee.ID, Role: domain.RoleMentee},
	} {
		sess := f.schedule(t)
		updated, err := f.svc.Update(context.Background(), ports.UpdateSessionInput{
			SessionID: sess.ID,
			Status:    domain.SessionCancelled,
			Identity:  identity,
		})
		if err != nil {
			t.Fatalf("%s: cancel failed: %v", identity.Role, err)
		}
		if updated.Status != domain.SessionCancelled {
			t.Fatalf("%s: expected CANCELLED, got %s", identity.Role, updated.Status)
		}
	}
}

func TestSessionService_Update_StrangerForbidden(t *testing.T) {
	f := newSessionFixture(t, true)
	sess := f.schedule(t)

	if _, err := f.svc.Update(context.Background(), ports.UpdateSessionInput{
		SessionID: sess.ID,
		Status:    domain.SessionCancelled,
		Identity:  domain.Identity{ID: "stranger", Role: domain.RoleMentee},
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSessionService_Update_AdminOverride(t *testing.T) {
	f := newSessionFixture(t, true)
	sess := f.schedule(t)

	if _, err := f.svc.Update(context.Background(), ports.UpdateSessionInput{
		SessionID: sess.ID,
		Status:    domain.SessionCancelled,
		Identity:  domain.Identity{ID: "a1", Role: domain.RoleAdmin},
	}); err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
}

func TestSessionService_Update_InvalidTransition(t *testing.T) {
	f := newSessionFixture(t, true)
	sess := f.schedule(t)

	if _, err := f.svc.Update(context.Background(), ports.UpdateSessionInput{
		SessionID: sess.ID,
		Status:    domain.SessionCancelled,
		Identity:  domain.Identity{ID: f.mentee.ID, Role: domain.RoleMentee},
	}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	// A cancelled session is terminal.
	if _, err := f.svc.Update(context.Background(), ports.UpdateSessionInput{
		SessionID: sess.ID,
		Status:    domain.SessionCompleted,
		Identity:  domain.Identity{ID: f.mentee.ID, Role: domain.RoleMentee},
	}); err != domain.ErrInvalidSessionTransition {
		t.Fatalf("expected ErrInvalidSessionTransition, got %v", err)
	}
}

func TestSessionService_ListForIdentity(t *testing.T) {
	f := newSessionFixture(t, true)
	f.schedule(t)

	forMentor, err := f.svc.ListForIdentity(context.Background(), domain.Identity{ID: f.mentor.ID, Role: domain.RoleMentor})
	if err != nil {
		t.Fatalf("list for mentor failed: %v", err)
	}
	if len(forMentor) != 1 {
		t.Fatalf("expected 1 session, got %d", len(forMentor))
	}
	if forMentor[0].Mentee.Email != "mentee@example.com" {
		t.Fatalf("expected mentee party joined, got %+v", forMentor[0].Mentee)
	}

	if _, err := f.svc.ListForIdentity(context.Background(), domain.Identity{ID: "a1", Role: domain.RoleAdmin}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for admin, got %v", err)
	}
}

func TestSessionStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to domain.SessionStatus
		want     bool
	}{
		{domain.SessionScheduled, domain.SessionCompleted, true},
		{domain.SessionScheduled, domain.SessionCancelled, true},
		{domain.SessionCompleted, domain.SessionCancelled, false},
		{domain.SessionCancelled, domain.SessionScheduled, false},
		{domain.SessionCompleted, domain.SessionScheduled, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
