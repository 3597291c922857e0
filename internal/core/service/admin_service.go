package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

type adminService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	matches  ports.MatchRepository
	sessions ports.SessionRepository
	log      zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	matches ports.MatchRepository,
	sessions ports.SessionRepository,
	log zerolog.Logger,
) ports.AdminService {
	return &adminService{users: users, profiles: profiles, matches: matches, sessions: sessions, log: log}
}

func (s *adminService) Stats(ctx context.Context) (*ports.PlatformStats, error) {
	stats := &ports.PlatformStats{}

	var err error
	if stats.TotalUsers, err = s.users.CountByRole(ctx, ""); err != nil {
		return nil, err
	}
	if stats.TotalMentors, err = s.users.CountByRole(ctx, domain.RoleMentor); err != nil {
		return nil, err
	}
	if stats.TotalMentees, err = s.users.CountByRole(ctx, domain.RoleMentee); err != nil {
		return nil, err
	}
	if stats.TotalMatches, err = s.matches.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalSessions, err = s.sessions.Count(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *adminService) ListUsers(ctx context.Context, role string) ([]ports.UserDetail, error) {
	if role != "" && !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	profileByID, err := s.profiles.FindByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ports.UserDetail, 0, len(users))
	for _, u := range users {
		out = append(out, ports.UserDetail{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			Profile:   profileByID[u.ID],
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

// CreateUser provisions an account with any role, including ADMIN, together
// with its initial profile.
func (s *adminService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if input.Name != "" || len(input.Skills) > 0 || input.Bio != "" || input.Industry != "" {
		if _, err := s.profiles.Upsert(ctx, &domain.Profile{
			UserID:   user.ID,
			Name:     input.Name,
			Bio:      input.Bio,
			Skills:   input.Skills,
			Industry: input.Industry,
		}); err != nil {
			s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to create initial profile")
		}
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created by admin")
	return user, nil
}

// UpdateUserRole changes a user's stored role. Any session token the user
// already holds keeps its minted role until they sign in again.
func (s *adminService) UpdateUserRole(ctx context.Context, userID, role string) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("role", role).Msg("user role updated")
	return nil
}

func (s *adminService) ListMatches(ctx context.Context) ([]ports.MatchDetail, error) {
	rows, err := s.matches.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows)*2)
	for _, m := range rows {
		ids = append(ids, m.MentorID, m.MenteeID)
	}
	parties, err := loadParties(ctx, s.users, s.profiles, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ports.MatchDetail, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.MatchDetail{
			ID:        m.ID,
			Status:    m.Status,
			Mentor:    parties[m.MentorID],
			Mentee:    parties[m.MenteeID],
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func (s *adminService) CreateMatch(ctx context.Context, mentorID, menteeID string) (*domain.Match, error) {
	mentor, err := s.users.FindByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	mentee, err := s.users.FindByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if mentor.Role != domain.RoleMentor || mentee.Role != domain.RoleMentee {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.matches.FindActive(ctx, mentorID, menteeID); err == nil {
		return nil, domain.ErrDuplicateMatch
	} else if !errors.Is(err, domain.ErrMatchNotFound) {
		return nil, err
	}

	created, err := s.matches.Insert(ctx, &domain.Match{
		MentorID:  mentorID,
		MenteeID:  menteeID,
		Status:    domain.MatchActive,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("match_id", created.ID).
		Str("mentor_id", mentorID).
		Str("mentee_id", menteeID).
		Msg("match created by admin")

	return created, nil
}

func (s *adminService) ListSessions(ctx context.Context) ([]ports.SessionDetail, error) {
	rows, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return sessionDetails(ctx, s.users, s.profiles, rows)
}
