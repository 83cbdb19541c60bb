package domain

import "time"

// BlogPost represents a blog article. Slug is derived from the title at
// creation time and never regenerated when the title is edited.
type BlogPost struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Excerpt         string      `json:"excerpt,omitempty"`
	Content         string      `json:"content"`
	FeaturedImage   string      `json:"featured_image,omitempty"`
	AuthorID        string      `json:"author_id"`
	Author          *PostAuthor `json:"author,omitempty"`
	Category        string      `json:"category"`
	Tags            []string    `json:"tags,omitempty"`
	MetaTitle       string      `json:"meta_title,omitempty"`
	MetaDescription string      `json:"meta_description,omitempty"`
	Published       bool        `json:"published"`
	PublishedAt     *time.Time  `json:"published_at,omitempty"`
	Views           int         `json:"views"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// PostAuthor is the public author projection joined onto posts.
type PostAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BlogCategoryGeneral is the default post category.
const BlogCategoryGeneral = "general"

// ValidBlogCategories contains the accepted post categories.
var ValidBlogCategories = []string{
	"devops",
	"security",
	"compliance",
	"cost-optimization",
	"architecture",
	BlogCategoryGeneral,
}

// IsValidBlogCategory checks if a category is valid.
func IsValidBlogCategory(category string) bool {
	for _, c := range ValidBlogCategories {
		if c == category {
			return true
		}
	}
	return false
}
