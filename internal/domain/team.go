package domain

import "time"

// TeamMember represents an entry on the about/team page.
type TeamMember struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Bio         string      `json:"bio,omitempty"`
	Photo       string      `json:"photo,omitempty"`
	SocialLinks SocialLinks `json:"social_links"`
	Order       int         `json:"order"`
	Enabled     bool        `json:"enabled"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// SocialLinks holds a team member's profile links.
type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	GitHub   string `json:"github"`
}
