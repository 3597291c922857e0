package domain

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

// Profile holds the public-facing details a user fills in after registering.
type Profile struct {
	UserID   string   `json:"user_id"`
	Name     string   `json:"name"`
	Bio      string   `json:"bio,omitempty"`
	Skills   []string `json:"skills"`
	Goals    string   `json:"goals,omitempty"`
	Industry string   `json:"industry,omitempty"`
}

// MatchingSkills returns the skills both profiles share. Comparison is
// case-insensitive on the mentee side to match how skills are entered free-form.
func MatchingSkills(mentorSkills, menteeSkills []string) []string {
	seen := make(map[string]struct{}, len(menteeSkills))
	for _, s := range menteeSkills {
		seen[normalizeSkill(s)] = struct{}{}
	}
	var shared []string
	for _, s := range mentorSkills {
		if _, ok := seen[normalizeSkill(s)]; ok {
			shared = append(shared, s)
		}
	}
	return shared
}
