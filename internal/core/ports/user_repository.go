package ports

import (
	"context"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts and their
// credentials. Plaintext passwords never reach this layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns users, optionally filtered by role ("" = all roles).
	List(ctx context.Context, role string) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	// CountByRole counts users with the given role ("" = all users).
	CountByRole(ctx context.Context, role string) (int64, error)
}

// ProfileRepository defines persistence operations for user profiles.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	// FindByUserIDs bulk-loads profiles keyed by user id. Missing profiles are
	// simply absent from the map, not an error.
	FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}
