package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

type profileService struct {
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, log zerolog.Logger) ports.ProfileService {
	return &profileService{profiles: profiles, log: log}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// Update upserts the caller's profile. The UserID is set by the handler from
// the session identity; callers cannot write another user's profile.
func (s *profileService) Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	updated, err := s.profiles.Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", profile.UserID).Msg("profile updated")
	return updated, nil
}
