package service

import (
	"context"
	"errors"
	"time"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/metrics"
	"cloudpillers-api/internal/repository"
)

// NewsletterService implements newsletter list management. Unsubscribes
// keep the row around so a later subscribe reactivates it.
type NewsletterService struct {
	subscribers repository.NewsletterRepository
}

// NewNewsletterService creates a new NewsletterService.
func NewNewsletterService(subscribers repository.NewsletterRepository) *NewsletterService {
	return &NewsletterService{subscribers: subscribers}
}

// Subscribe adds an email to the list. A previously unsubscribed entry is
// reactivated; an already active one yields domain.ErrAlreadySubscribed.
func (s *NewsletterService) Subscribe(ctx context.Context, email, name string) (*domain.Subscriber, error) {
	existing, err := s.subscribers.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.Subscribed {
			metrics.NewsletterSignupsTotal.WithLabelValues("duplicate").Inc()
			return nil, domain.ErrAlreadySubscribed
		}

		existing.Subscribed = true
		existing.SubscribedAt = time.Now()
		existing.UnsubscribedAt = nil
		if name != "" {
			existing.Name = name
		}
		if err := s.subscribers.Update(ctx, existing); err != nil {
			return nil, err
		}
		metrics.NewsletterSignupsTotal.WithLabelValues("resubscribed").Inc()
		return existing, nil
	}

	subscriber := &domain.Subscriber{Email: email, Name: name}
	if err := s.subscribers.Create(ctx, subscriber); err != nil {
		// A concurrent subscribe for the same email may have won.
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrAlreadySubscribed
		}
		return nil, err
	}
	metrics.NewsletterSignupsTotal.WithLabelValues("subscribed").Inc()
	return subscriber, nil
}

// Unsubscribe deactivates an entry. Unknown emails yield
// domain.ErrNotFound.
func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	subscriber, err := s.subscribers.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	now := time.Now()
	subscriber.Subscribed = false
	subscriber.UnsubscribedAt = &now
	return s.subscribers.Update(ctx, subscriber)
}
