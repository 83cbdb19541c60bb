package domain

import "time"

// Testimonial represents a customer quote on the public site.
type Testimonial struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Role        string    `json:"role,omitempty"`
	Testimonial string    `json:"testimonial"`
	Rating      int       `json:"rating"`
	Photo       string    `json:"photo,omitempty"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
