package service

import (
	"context"
	"time"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/listing"
	"cloudpillers-api/internal/logger"
	"cloudpillers-api/internal/mailer"
	"cloudpillers-api/internal/metrics"
	"cloudpillers-api/internal/repository"
)

// notifyTimeout bounds the background email delivery so a stuck SES
// call cannot leak goroutines indefinitely.
const notifyTimeout = 30 * time.Second

// LeadService implements contact and assessment intake. Submissions are
// persisted first; notification emails go out on a detached goroutine so
// delivery failures never surface to the submitter.
type LeadService struct {
	contacts    repository.ContactRepository
	assessments repository.AssessmentRepository
	mail        mailer.Mailer
	adminEmail  string
	clientURL   string
}

// NewLeadService creates a new LeadService. mail may be nil when email
// delivery is not configured; submissions are still stored.
func NewLeadService(
	contacts repository.ContactRepository,
	assessments repository.AssessmentRepository,
	mail mailer.Mailer,
	adminEmail, clientURL string,
) *LeadService {
	return &LeadService{
		contacts:    contacts,
		assessments: assessments,
		mail:        mail,
		adminEmail:  adminEmail,
		clientURL:   clientURL,
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func (s *LeadService) sendInBackground(kind string, messages []mailer.Message) {
	if s.mail == nil {
		logger.Debug("Email delivery not configured, skipping notifications", "kind", kind)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		for _, msg := range messages {
			err := s.mail.Send(ctx, msg)
			metrics.ObserveNotificationEmail(kind, err)
			if err != nil {
				logger.Error("Failed to send notification email",
					"kind", kind,
					"subject", msg.Subject,
					"error", err,
				)
			}
		}
	}()
}

// CreateContact stores a contact submission and triggers the admin alert
// and submitter confirmation in the background.
func (s *LeadService) CreateContact(ctx context.Context, contact *domain.Contact) error {
	if contact.Service == "" {
		contact.Service = domain.ContactServiceGeneral
	}
	contact.Status = domain.ContactStatusNew

	if err := s.contacts.Create(ctx, contact); err != nil {
		return err
	}
	metrics.ObserveLeadSubmission("contact")

	s.sendInBackground("contact", []mailer.Message{
		mailer.ContactNotification(s.adminEmail, contact),
		mailer.Confirmation(contact.Email, contact.Name, "contact", s.clientURL),
	})
	return nil
}

// ListContacts returns one page of submissions inside the date window
// named by filter.
func (s *LeadService) ListContacts(ctx context.Context, filter string, page, limit int) ([]domain.Contact, PageInfo, error) {
	page, limit = normalizePage(page, limit)
	window := listing.RangeFor(filter, time.Now())

	contacts, total, err := s.contacts.List(ctx, window, limit, (page-1)*limit)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return contacts, PageInfo{Page: page, Pages: listing.Pages(total, limit), Total: total}, nil
}

// GetContact retrieves one contact submission.
func (s *LeadService) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	return s.contacts.GetByID(ctx, id)
}

// UpdateContactStatus moves a contact lead through the pipeline.
func (s *LeadService) UpdateContactStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	return s.contacts.UpdateStatus(ctx, id, status)
}

// CreateAssessment stores an assessment request and triggers the admin
// alert and submitter confirmation in the background.
func (s *LeadService) CreateAssessment(ctx context.Context, assessment *domain.Assessment) error {
	assessment.Status = domain.AssessmentStatusNew

	if err := s.assessments.Create(ctx, assessment); err != nil {
		return err
	}
	metrics.ObserveLeadSubmission("assessment")

	s.sendInBackground("assessment", []mailer.Message{
		mailer.AssessmentNotification(s.adminEmail, assessment),
		mailer.Confirmation(assessment.Email, assessment.Name, "assessment", s.clientURL),
	})
	return nil
}

// ListAssessments returns one page of requests inside the date window
// named by filter.
func (s *LeadService) ListAssessments(ctx context.Context, filter string, page, limit int) ([]domain.Assessment, PageInfo, error) {
	page, limit = normalizePage(page, limit)
	window := listing.RangeFor(filter, time.Now())

	assessments, total, err := s.assessments.List(ctx, window, limit, (page-1)*limit)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return assessments, PageInfo{Page: page, Pages: listing.Pages(total, limit), Total: total}, nil
}

// GetAssessment retrieves one assessment request.
func (s *LeadService) GetAssessment(ctx context.Context, id string) (*domain.Assessment, error) {
	return s.assessments.GetByID(ctx, id)
}
