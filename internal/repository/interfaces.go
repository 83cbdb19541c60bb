package repository

import (
	"context"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/listing"
)

// UserRepository defines methods for admin user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}

// ContactRepository defines methods for contact submission data access.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context, r listing.DateRange, limit, offset int) ([]domain.Contact, int, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Contact, error)
}

// AssessmentRepository defines methods for assessment submission data access.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *domain.Assessment) error
	List(ctx context.Context, r listing.DateRange, limit, offset int) ([]domain.Assessment, int, error)
	GetByID(ctx context.Context, id string) (*domain.Assessment, error)
}

// BlogRepository defines methods for blog post data access.
type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	// GetPublishedBySlug returns a published post only.
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListPublished(ctx context.Context, category, search string, limit, offset int) ([]domain.BlogPost, int, error)
	ListAll(ctx context.Context) ([]domain.BlogPost, error)
	Publish(ctx context.Context, id string) (*domain.BlogPost, error)
	// IncrementViews bumps the view counter. At-least-once under
	// concurrent readers; the row update itself is atomic.
	IncrementViews(ctx context.Context, id string) error
}

// FAQRepository defines methods for FAQ data access.
type FAQRepository interface {
	List(ctx context.Context, enabledOnly bool, category string) ([]domain.FAQ, error)
	GetByID(ctx context.Context, id string) (*domain.FAQ, error)
	Create(ctx context.Context, faq *domain.FAQ) error
	Update(ctx context.Context, faq *domain.FAQ) error
	Delete(ctx context.Context, id string) error
}

// PricingRepository defines methods for pricing plan data access.
type PricingRepository interface {
	List(ctx context.Context, enabledOnly bool) ([]domain.PricingPlan, error)
	GetByID(ctx context.Context, id string) (*domain.PricingPlan, error)
	Create(ctx context.Context, plan *domain.PricingPlan) error
	Update(ctx context.Context, plan *domain.PricingPlan) error
	Delete(ctx context.Context, id string) error
}

// TeamRepository defines methods for team member data access.
type TeamRepository interface {
	List(ctx context.Context, enabledOnly bool) ([]domain.TeamMember, error)
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	Create(ctx context.Context, member *domain.TeamMember) error
	Update(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
}

// TestimonialRepository defines methods for testimonial data access.
type TestimonialRepository interface {
	List(ctx context.Context, enabledOnly bool, featured *bool) ([]domain.Testimonial, error)
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	Update(ctx context.Context, testimonial *domain.Testimonial) error
	Delete(ctx context.Context, id string) error
}

// HomepageRepository manages the homepage singleton document.
type HomepageRepository interface {
	// Get returns the singleton, creating it with defaults on first access.
	Get(ctx context.Context) (*domain.HomepageContent, error)
	Update(ctx context.Context, content *domain.HomepageContent) (*domain.HomepageContent, error)
}

// SiteSettingsRepository manages the site settings singleton document.
type SiteSettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error)
}

// ServiceContentRepository defines methods for service page content,
// addressed by service ID.
type ServiceContentRepository interface {
	List(ctx context.Context) ([]domain.ServiceContent, error)
	GetByServiceID(ctx context.Context, serviceID string) (*domain.ServiceContent, error)
	Create(ctx context.Context, content *domain.ServiceContent) error
	Upsert(ctx context.Context, content *domain.ServiceContent) (*domain.ServiceContent, error)
	Delete(ctx context.Context, serviceID string) error
}

// SEORepository defines methods for per-page SEO settings, addressed by
// page path.
type SEORepository interface {
	List(ctx context.Context) ([]domain.SEOSettings, error)
	GetByPage(ctx context.Context, page string) (*domain.SEOSettings, error)
	Upsert(ctx context.Context, settings *domain.SEOSettings) (*domain.SEOSettings, error)
	Delete(ctx context.Context, page string) error
}

// NewsletterRepository defines methods for newsletter subscriber data access.
type NewsletterRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	Create(ctx context.Context, subscriber *domain.Subscriber) error
	Update(ctx context.Context, subscriber *domain.Subscriber) error
}
