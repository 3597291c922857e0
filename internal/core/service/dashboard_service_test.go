package service

import (
	"context"
	"testing"
	"time"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

func TestDashboardService_Mentor(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	requests := newStubRequestRepo()
	matches := newStubMatchRepo()
	sessions := newStubSessionRepo()
	svc := NewDashboardService(users, profiles, requests, matches, sessions, testLogger())

	mentor, _ := users.Create(context.Background(), &domain.User{Email: "mentor@example.com", Role: domain.RoleMentor})
	mentee, _ := users.Create(context.Background(), &domain.User{Email: "mentee@example.com", Role: domain.RoleMentee})

	_, _ = matches.Insert(context.Background(), &domain.Match{
		MentorID: mentor.ID, MenteeID: mentee.ID, Status: domain.MatchActive, CreatedAt: time.Now(),
	})
	_, _ = requests.Insert(context.Background(), &domain.MentorshipRequest{
		MenteeID: mentee.ID, MentorID: mentor.ID, Status: domain.RequestPending,
	})

	now := time.Now()
	_, _ = sessions.Insert(context.Background(), &domain.Session{
		MentorID: mentor.ID, MenteeID: mentee.ID, Status: domain.SessionScheduled, ScheduledAt: now.Add(time.Hour),
	})
	_, _ = sessions.Insert(context.Background(), &domain.Session{
		MentorID: mentor.ID, MenteeID: mentee.ID, Status: domain.SessionCompleted, MenteeRating: 4, ScheduledAt: now.Add(-time.Hour),
	})

	d, err := svc.Mentor(context.Background(), mentor.ID)
	if err != nil {
		t.Fatalf("Mentor returned error: %v", err)
	}
	if d.PendingRequests != 1 {
		t.Fatalf("expected 1 pending request, got %d", d.PendingRequests)
	}
	if d.UpcomingSessions != 1 {
		t.Fatalf("expected 1 upcoming session, got %d", d.UpcomingSessions)
	}
	if d.TotalMentees != 1 {
		t.Fatalf("expected 1 mentee, got %d", d.TotalMentees)
	}
	if d.AverageRating != 4 {
		t.Fatalf("expected rating 4, got %v", d.AverageRating)
	}
	if len(d.RecentSessions) != 2 {
		t.Fatalf("expected 2 recent sessions, got %d", len(d.RecentSessions))
	}
	if len(d.PendingList) != 1 {
		t.Fatalf("expected 1 pending request listed, got %d", len(d.PendingList))
	}
	if d.PendingList[0].Mentee.Email != "mentee@example.com" {
		t.Fatalf("expected mentee party joined, got %+v", d.PendingList[0].Mentee)
	}
}

func TestDashboardService_Mentee(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	requests := newStubRequestRepo()
	matches := newStubMatchRepo()
	sessions := newStubSessionRepo()
	svc := NewDashboardService(users, profiles, requests, matches, sessions, testLogger())

	mentor, _ := users.Create(context.Background(), &domain.User{Email: "mentor@example.com", Role: domain.RoleMentor})
	_, _ = users.Create(context.Background(), &domain.User{Email: "mentor2@example.com", Role: domain.RoleMentor})
	mentee, _ := users.Create(context.Background(), &domain.User{Email: "mentee@example.com", Role: domain.RoleMentee})

	_, _ = matches.Insert(context.Background(), &domain.Match{
		MentorID: mentor.ID, MenteeID: mentee.ID, Status: domain.MatchActive, CreatedAt: time.Now(),
	})
	_, _ = sessions.Insert(context.Background(), &domain.Session{
		MentorID: mentor.ID, MenteeID: mentee.ID, Status: domain.SessionCompleted, ScheduledAt: time.Now(),
	})

	d, err := svc.Mentee(context.Background(), mentee.ID)
	if err != nil {
		t.Fatalf("Mentee returned error: %v", err)
	}
	if d.TotalMentors != 1 {
		t.Fatalf("expected 1 mentor, got %d", d.TotalMentors)
	}
	if d.CompletedSessions != 1 {
		t.Fatalf("expected 1 completed session, got %d", d.CompletedSessions)
	}
	if d.AvailableMentors != 2 {
		t.Fatalf("expected 2 available mentors, got %d", d.AvailableMentors)
	}
	if len(d.RecentSessions) != 1 {
		t.Fatalf("expected 1 recent session, got %d", len(d.RecentSessions))
	}
}

func TestDashboardService_EmptyListsNotNil(t *testing.T) {
	users := newStubUserRepo()
	svc := NewDashboardService(users, newStubProfileRepo(), newStubRequestRepo(), newStubMatchRepo(), newStubSessionRepo(), testLogger())

	mentor, _ := users.Create(context.Background(), &domain.User{Email: "mentor@example.com", Role: domain.RoleMentor})

	d, err := svc.Mentor(context.Background(), mentor.ID)
	if err != nil {
		t.Fatalf("Mentor returned error: %v", err)
	}
	if d.RecentSessions == nil || d.PendingList == nil {
		t.Fatalf("expected empty slices, got nil")
	}
}
