package domain

import "time"

// FAQ represents a frequently-asked question entry.
type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Order     int       `json:"order"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FAQCategoryGeneral is the default FAQ category.
const FAQCategoryGeneral = "General"

// ValidFAQCategories contains the accepted FAQ categories.
var ValidFAQCategories = []string{FAQCategoryGeneral, "Pricing", "Services", "Technical", "Support"}

// IsValidFAQCategory checks if an FAQ category is valid.
func IsValidFAQCategory(category string) bool {
	for _, c := range ValidFAQCategories {
		if c == category {
			return true
		}
	}
	return false
}
