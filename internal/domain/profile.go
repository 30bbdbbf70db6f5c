package domain

import (
	"regexp"
	"slices"
	"strings"
)

// Avatars are the built-in avatar identifiers a profile may pick from.
var Avatars = []string{
	"male-avatar-1",
	"male-avatar-2",
	"female-avatar-1",
	"female-avatar-2",
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserProfile is the locally stored user identity.
type UserProfile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

// DefaultProfile returns the profile used before onboarding.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:   "John Doe",
		Email:  "john@example.com",
		Bio:    "Task management enthusiast and productivity geek.",
		Avatar: Avatars[0],
	}
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks the fields a profile must carry.
func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if !ValidEmail(strings.TrimSpace(p.Email)) {
		return ErrInvalidEmail
	}
	if p.Avatar != "" && !slices.Contains(Avatars, p.Avatar) {
		return ErrInvalidAvatar
	}
	return nil
}

// Initials returns up to two upper-case initials of the profile name.
func (p UserProfile) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(p.Name) {
		b.WriteString(strings.ToUpper(part[:1]))
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}
