package ports

import (
	"context"
	"time"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

// PlatformStats is the admin overview of the whole platform.
type PlatformStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalMentors  int64 `json:"total_mentors"`
	TotalMentees  int64 `json:"total_mentees"`
	TotalMatches  int64 `json:"total_matches"`
	TotalSessions int64 `json:"total_sessions"`
}

// UserDetail joins a user account with its profile for admin listings.
type UserDetail struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Profile   *domain.Profile `json:"profile,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateUserInput carries an admin-created account plus its initial profile.
// Unlike self-registration, any role (including ADMIN) may be assigned.
type CreateUserInput struct {
	Email    string
	Password string
	Role     string
	Name     string
	Bio      string
	Skills   []string
	Industry string
}

// MatchDetail joins a match with both parties for admin listings.
type MatchDetail struct {
	ID        string             `json:"id"`
	Status    domain.MatchStatus `json:"status"`
	Mentor    Party              `json:"mentor"`
	Mentee    Party              `json:"mentee"`
	CreatedAt time.Time          `json:"created_at"`
}

// AdminService implements the admin management surface. Role enforcement
// happens at the handler boundary; these methods assume an ADMIN caller.
type AdminService interface {
	Stats(ctx context.Context) (*PlatformStats, error)
	ListUsers(ctx context.Context, role string) ([]UserDetail, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// UpdateUserRole changes a stored role. Outstanding session tokens keep
	// their minted role until the holder signs in again.
	UpdateUserRole(ctx context.Context, userID, role string) error
	ListMatches(ctx context.Context) ([]MatchDetail, error)
	CreateMatch(ctx context.Context, mentorID, menteeID string) (*domain.Match, error)
	ListSessions(ctx context.Context) ([]SessionDetail, error)
}

// ProfileService implements self-service profile reads and writes.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}
