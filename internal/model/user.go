package model

import "time"

// SessionUser is the authenticated user as returned by the login endpoint.
// The balance is only ever overwritten with backend-reported values.
type SessionUser struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	VbucksBalance int    `json:"vbucksBalance"`
}

// PublicUser is a row of the public user directory.
type PublicUser struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	VbucksBalance int       `json:"vbucksBalance"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PublicUserPage is a paginated user directory listing.
type PublicUserPage struct {
	Data       []PublicUser `json:"data"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
}
