package service

import (
	"context"

	"cloudpillers-api/internal/domain"
)

// PageInfo describes one page of a date-filtered admin listing.
type PageInfo struct {
	Page  int
	Pages int
	Total int
}

// AuthServiceInterface defines admin account and session operations.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register creates a new admin-panel account.
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	// GetUser retrieves one account by ID.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// ListUsers returns all accounts.
	ListUsers(ctx context.Context) ([]domain.User, error)
	// DeleteUser removes an account. The acting user cannot delete itself.
	DeleteUser(ctx context.Context, actorID, targetID string) error
}

// LeadServiceInterface defines lead intake and review operations.
type LeadServiceInterface interface {
	// CreateContact stores a contact submission and triggers
	// notification emails in the background.
	CreateContact(ctx context.Context, contact *domain.Contact) error
	// ListContacts returns one page of submissions inside the date window
	// named by filter.
	ListContacts(ctx context.Context, filter string, page, limit int) ([]domain.Contact, PageInfo, error)
	GetContact(ctx context.Context, id string) (*domain.Contact, error)
	UpdateContactStatus(ctx context.Context, id, status string) (*domain.Contact, error)

	// CreateAssessment stores an assessment request and triggers
	// notification emails in the background.
	CreateAssessment(ctx context.Context, assessment *domain.Assessment) error
	ListAssessments(ctx context.Context, filter string, page, limit int) ([]domain.Assessment, PageInfo, error)
	GetAssessment(ctx context.Context, id string) (*domain.Assessment, error)
}

// BlogServiceInterface defines blog post operations.
type BlogServiceInterface interface {
	// Create derives the slug from the title and stores the post.
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	// GetBySlug returns a published post and counts the read.
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListPublished(ctx context.Context, category, search string, page, limit int) ([]domain.BlogPost, PageInfo, error)
	ListAll(ctx context.Context) ([]domain.BlogPost, error)
	// Publish marks a post published and stamps the publication time.
	Publish(ctx context.Context, id string) (*domain.BlogPost, error)
}

// NewsletterServiceInterface defines newsletter list operations.
type NewsletterServiceInterface interface {
	// Subscribe adds an email to the list, reactivating a previously
	// unsubscribed entry. Returns domain.ErrAlreadySubscribed when the
	// email is already active.
	Subscribe(ctx context.Context, email, name string) (*domain.Subscriber, error)
	// Unsubscribe deactivates an entry without deleting it.
	Unsubscribe(ctx context.Context, email string) error
}
