package domain

import "strings"

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseSkills splits a comma-separated skill list into trimmed entries,
// dropping empties. Used when profiles are submitted as free text.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			skills = append(skills, t)
		}
	}
	return skills
}
