package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
	"github.com/mentorloop/mentorship-api/internal/pkg/token"
)

// AuthService implements registration and sign-in. Password comparison is
// delegated to bcrypt, which is constant-time with respect to where a
// mismatch occurs.
type AuthService struct {
	users   ports.UserRepository
	issuer  *token.Issuer
	limiter ports.LoginLimiter
}

func NewAuthService(users ports.UserRepository, issuer *token.Issuer, limiter ports.LoginLimiter) *AuthService {
	return &AuthService{users: users, issuer: issuer, limiter: limiter}
}

func (s *AuthService) Register(ctx context.Context, email, password, role string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleMentee
	}
	// ADMIN is not self-assignable at registration.
	if role != domain.RoleMentor && role != domain.RoleMentee {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyFailures(ctx, email)
		// A limiter outage must not lock everyone out; fail open.
		if err == nil && blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.limiter != nil {
			_ = s.limiter.RecordFailure(ctx, email)
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(domain.Identity{ID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		_ = s.limiter.Clear(ctx, email)
	}

	return signed, user, nil
}
