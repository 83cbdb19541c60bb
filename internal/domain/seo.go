package domain

import "time"

// SEOSettings holds per-page meta-tag overrides, addressed by page path.
type SEOSettings struct {
	ID            string         `json:"id"`
	Page          string         `json:"page"`
	Title         string         `json:"title,omitempty"`
	Description   string         `json:"description,omitempty"`
	Keywords      string         `json:"keywords,omitempty"`
	Canonical     string         `json:"canonical,omitempty"`
	OGImage       string         `json:"og_image,omitempty"`
	OGTitle       string         `json:"og_title,omitempty"`
	OGDescription string         `json:"og_description,omitempty"`
	Robots        string         `json:"robots"`
	Schema        map[string]any `json:"schema,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// DefaultRobots is used when an upsert does not specify a robots directive.
const DefaultRobots = "index, follow"
