package dto

import "strings"

// IdentityUser is the raw user record returned by the Clerk API. It is never
// persisted locally.
type IdentityUser struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	EmailAddresses []IdentityEmail `json:"email_addresses"`
	ImageURL       string          `json:"image_url"`
}

type IdentityEmail struct {
	EmailAddress string `json:"email_address"`
}

func (u IdentityUser) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

func (u IdentityUser) PrimaryEmail() string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}

// IdentityProfile is the flattened shape served to pickers and search.
type IdentityProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func ProfileOf(u IdentityUser) IdentityProfile {
	return IdentityProfile{
		ID:        u.ID,
		Name:      u.FullName(),
		Email:     u.PrimaryEmail(),
		AvatarURL: u.ImageURL,
	}
}

// Placeholder values rendered when a user's clerk_id is unset or points to an
// identity record that no longer exists upstream.
const (
	PlaceholderName  = "No Clerk"
	PlaceholderEmail = "-"
)

// DirectoryEntry is one local user decorated with its resolved identity.
type DirectoryEntry struct {
	UserID      string   `json:"user_id"`
	ClerkID     *string  `json:"clerk_id,omitempty"`
	HasIdentity bool     `json:"has_identity"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	RoleNames   []string `json:"role_names"`
}
