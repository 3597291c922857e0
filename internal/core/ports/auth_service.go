package ports

import (
	"context"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

// LoginLimiter throttles repeated failed sign-in attempts per email.
type LoginLimiter interface {
	// TooManyFailures reports whether the email has exceeded the failure budget.
	TooManyFailures(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the email.
	RecordFailure(ctx context.Context, email string) error
	// Clear resets the failure count after a successful sign-in.
	Clear(ctx context.Context, email string) error
}

// AuthService implements registration and sign-in.
type AuthService interface {
	// Register creates an account with a hashed credential. Only MENTOR and
	// MENTEE are self-assignable; it does not authenticate the new account.
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	// Login verifies the credential and returns a signed session token plus
	// the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
