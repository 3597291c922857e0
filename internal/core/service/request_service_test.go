package service

import (
	"context"
	"testing"
	"time"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

type requestFixture struct {
	users    *stubUserRepo
	requests *stubRequestRepo
	matches  *stubMatchRepo
	svc      ports.RequestService
	mentor   *domain.User
	mentee   *domain.User
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()
	users := newStubUserRepo()
	requests := newStubRequestRepo()
	matches := newStubMatchRepo()
	profiles := newStubProfileRepo()

	mentor, err := users.Create(context.Background(), &domain.User{Email: "mentor@example.com", Role: domain.RoleMentor})
	if err != nil {
		t.Fatalf("create mentor: %v", err)
	}
	mentee, err := users.Create(context.Background(), &domain.User{Email: "mentee@example.com", Role: domain.RoleMentee})
	if err != nil {
		t.Fatalf("create mentee: %v", err)
	}

	return &requestFixture{
		users:    users,
		requests: requests,
		matches:  matches,
		svc:      NewRequestService(requests, matches, users, profiles, testLogger()),
		mentor:   mentor,
		mentee:   mentee,
	}
}

func TestRequestService_Create(t *testing.T) {
	f := newRequestFixture(t)

	req, err := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "please mentor me")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if req.Status != domain.RequestPending {
		t.Fatalf("expected PENDING, got %s", req.Status)
	}
	if req.MenteeID != f.mentee.ID || req.MentorID != f.mentor.ID {
		t.Fatalf("unexpected parties: %+v", req)
	}
}

func TestRequestService_Create_RejectsNonMentorTarget(t *testing.T) {
	f := newRequestFixture(t)

	other, _ := f.users.Create(context.Background(), &domain.User{Email: "other@example.com", Role: domain.RoleMentee})
	if _, err := f.svc.Create(context.Background(), f.mentee.ID, other.ID, ""); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := f.svc.Create(context.Background(), f.mentee.ID, "missing", ""); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for unknown target, got %v", err)
	}
}

func TestRequestService_Create_RejectsDuplicatePending(t *testing.T) {
	f := newRequestFixture(t)

	if _, err := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, ""); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "again"); err != domain.ErrDuplicateRequest {
		t.Fatalf("expected ErrDuplicateRequest, got %v", err)
	}
}

func TestRequestService_Create_AllowsNewRequestAfterDecision(t *testing.T) {
	f := newRequestFixture(t)

	req, err := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := f.svc.Decide(context.Background(), ports.DecideRequestInput{
		RequestID: req.ID, MentorID: f.mentor.ID, Accept: false,
	}); err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	// Only a pending request blocks a new one.
	if _, err := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "retry"); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}

func TestRequestService_Decide_AcceptCreatesMatch(t *testing.T) {
	f := newRequestFixture(t)

	req, _ := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "")
	decided, err := f.svc.Decide(context.Background(), ports.DecideRequestInput{
		RequestID: req.ID, MentorID: f.mentor.ID, Accept: true,
	})
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if decided.Status != domain.RequestAccepted {
		t.Fatalf("expected ACCEPTED, got %s", decided.Status)
	}

	match, err := f.matches.FindActive(context.Background(), f.mentor.ID, f.mentee.ID)
	if err != nil {
		t.Fatalf("expected active match: %v", err)
	}
	if match.Status != domain.MatchActive {
		t.Fatalf("expected ACTIVE match, got %s", match.Status)
	}
}

func TestRequestService_Decide_DeclineCreatesNoMatch(t *testing.T) {
	f := newRequestFixture(t)

	req, _ := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "")
	decided, err := f.svc.Decide(context.Background(), ports.DecideRequestInput{
		RequestID: req.ID, MentorID: f.mentor.ID, Accept: false,
	})
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if decided.Status != domain.RequestDeclined {
		t.Fatalf("expected DECLINED, got %s", decided.Status)
	}
	if _, err := f.matches.FindActive(context.Background(), f.mentor.ID, f.mentee.ID); err != domain.ErrMatchNotFound {
		t.Fatalf("expected no match, got %v", err)
	}
}

func TestRequestService_Decide_OnlyAddressedMentor(t *testing.T) {
	f := newRequestFixture(t)

	req, _ := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "")
	other, _ := f.users.Create(context.Background(), &domain.User{Email: "other-mentor@example.com", Role: domain.RoleMentor})

	if _, err := f.svc.Decide(context.Background(), ports.DecideRequestInput{
		RequestID: req.ID, MentorID: other.ID, Accept: true,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequestService_Decide_FinalDecisions(t *testing.T) {
	f := newRequestFixture(t)

	req, _ := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "")
	if _, err := f.svc.Decide(context.Background(), ports.DecideRequestInput{
		RequestID: req.ID, MentorID: f.mentor.ID, Accept: true,
	}); err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	if _, err := f.svc.Decide(context.Background(), ports.DecideRequestInput{
		RequestID: req.ID, MentorID: f.mentor.ID, Accept: false,
	}); err != domain.ErrRequestNotPending {
		t.Fatalf("expected ErrRequestNotPending, got %v", err)
	}
}

func TestRequestService_Decide_NotFound(t *testing.T) {
	f := newRequestFixture(t)

	if _, err := f.svc.Decide(context.Background(), ports.DecideRequestInput{
		RequestID: "missing", MentorID: f.mentor.ID, Accept: true,
	}); err != domain.ErrRequestNotFound {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestRequestService_ListForIdentity(t *testing.T) {
	f := newRequestFixture(t)

	if _, err := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "hello"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	forMentor, err := f.svc.ListForIdentity(context.Background(), domain.Identity{ID: f.mentor.ID, Role: domain.RoleMentor})
	if err != nil {
		t.Fatalf("list for mentor failed: %v", err)
	}
	if len(forMentor) != 1 {
		t.Fatalf("expected 1 request for mentor, got %d", len(forMentor))
	}
	if forMentor[0].Mentee.Email != "mentee@example.com" {
		t.Fatalf("expected mentee party joined, got %+v", forMentor[0].Mentee)
	}

	forMentee, err := f.svc.ListForIdentity(context.Background(), domain.Identity{ID: f.mentee.ID, Role: domain.RoleMentee})
	if err != nil {
		t.Fatalf("list for mentee failed: %v", err)
	}
	if len(forMentee) != 1 {
		t.Fatalf("expected 1 request for mentee, got %d", len(forMentee))
	}

	if _, err := f.svc.ListForIdentity(context.Background(), domain.Identity{ID: "a1", Role: domain.RoleAdmin}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for admin, got %v", err)
	}
}

func TestRequestService_Decide_AcceptIdempotentOnExistingMatch(t *testing.T) {
	f := newRequestFixture(t)

	// A match created directly by an admin must not break a later accept.
	if _, err := f.matches.Insert(context.Background(), &domain.Match{
		MentorID: f.mentor.ID, MenteeID: f.mentee.ID, Status: domain.MatchActive, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("insert match: %v", err)
	}

	req, _ := f.svc.Create(context.Background(), f.mentee.ID, f.mentor.ID, "")
	if _, err := f.svc.Decide(context.Background(), ports.DecideRequestInput{
		RequestID: req.ID, MentorID: f.mentor.ID, Accept: true,
	}); err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	matches, _ := f.matches.List(context.Background())
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}
