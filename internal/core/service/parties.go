package service

import (
	"context"

	"github.com/mentorloop/mentorship-api/internal/core/ports"
)

// loadParties bulk-resolves user ids to the lightweight Party view used in
// joined responses. Users without a profile still appear, with an empty name.
func loadParties(ctx context.Context, users ports.UserRepository, profiles ports.ProfileRepository, ids []string) (map[string]ports.Party, error) {
	uniq := make(map[string]struct{}, len(ids))
	ordered := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := uniq[id]; ok {
			continue
		}
		uniq[id] = struct{}{}
		ordered = append(ordered, id)
	}

	profileByID, err := profiles.FindByUserIDs(ctx, ordered)
	if err != nil {
		return nil, err
	}

	parties := make(map[string]ports.Party, len(ordered))
	for _, id := range ordered {
		user, err := users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		p := ports.Party{ID: user.ID, Email: user.Email}
		if profile, ok := profileByID[id]; ok {
			p.Name = profile.Name
			p.Bio = profile.Bio
			p.Skills = profile.Skills
		}
		parties[id] = p
	}
	return parties, nil
}
