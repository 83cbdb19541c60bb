package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/listing"
	"cloudpillers-api/internal/mailer"
)

// In-memory fakes standing in for the PostgreSQL repositories.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
	next  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrConflict
		}
	}
	f.next++
	user.ID = "user-" + strconv.Itoa(f.next)
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts []domain.Contact
	next     int
}

func (f *fakeContactRepo) Create(_ context.Context, contact *domain.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	contact.ID = "contact-" + strconv.Itoa(f.next)
	f.contacts = append(f.contacts, *contact)
	return nil
}

func (f *fakeContactRepo) List(_ context.Context, r listing.DateRange, limit, offset int) ([]domain.Contact, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []domain.Contact{}
	for _, c := range f.contacts {
		if r.Contains(c.CreatedAt) {
			matched = append(matched, c)
		}
	}
	total := len(matched)
	if offset >= len(matched) {
		return []domain.Contact{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id string) (*domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contacts {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeContactRepo) UpdateStatus(_ context.Context, id, status string) (*domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			f.contacts[i].Status = status
			c := f.contacts[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeAssessmentRepo struct {
	mu          sync.Mutex
	assessments []domain.Assessment
	next        int
}

func (f *fakeAssessmentRepo) Create(_ context.Context, a *domain.Assessment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	a.ID = "assessment-" + strconv.Itoa(f.next)
	f.assessments = append(f.assessments, *a)
	return nil
}

func (f *fakeAssessmentRepo) List(_ context.Context, r listing.DateRange, limit, offset int) ([]domain.Assessment, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []domain.Assessment{}
	for _, a := range f.assessments {
		if r.Contains(a.CreatedAt) {
			matched = append(matched, a)
		}
	}
	total := len(matched)
	if offset >= len(matched) {
		return []domain.Assessment{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeAssessmentRepo) GetByID(_ context.Context, id string) (*domain.Assessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.assessments {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeBlogRepo struct {
	mu    sync.Mutex
	posts map[string]domain.BlogPost
	next  int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[string]domain.BlogPost)}
}

func (f *fakeBlogRepo) Create(_ context.Context, post *domain.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.Slug == post.Slug {
			return domain.ErrConflict
		}
	}
	f.next++
	post.ID = "post-" + strconv.Itoa(f.next)
	f.posts[post.ID] = *post
	return nil
}

func (f *fakeBlogRepo) Update(_ context.Context, post *domain.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[post.ID]; !ok {
		return domain.ErrNotFound
	}
	f.posts[post.ID] = *post
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id string) (*domain.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.posts[id]; ok {
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBlogRepo) GetPublishedBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.Slug == slug && p.Published {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBlogRepo) ListPublished(_ context.Context, category, search string, limit, offset int) ([]domain.BlogPost, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []domain.BlogPost{}
	for _, p := range f.posts {
		if !p.Published {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, p)
	}
	total := len(matched)
	if offset >= len(matched) {
		return []domain.BlogPost{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeBlogRepo) ListAll(_ context.Context) ([]domain.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.BlogPost{}
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeBlogRepo) Publish(ctx context.Context, id string) (*domain.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Published = true
	now := p.UpdatedAt
	p.PublishedAt = &now
	f.posts[id] = p
	return &p, nil
}

func (f *fakeBlogRepo) IncrementViews(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Views++
	f.posts[id] = p
	return nil
}

type fakeNewsletterRepo struct {
	mu          sync.Mutex
	subscribers map[string]domain.Subscriber
	next        int
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subscribers: make(map[string]domain.Subscriber)}
}

func (f *fakeNewsletterRepo) GetByEmail(_ context.Context, email string) (*domain.Subscriber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.subscribers[email]; ok {
		return &s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNewsletterRepo) Create(_ context.Context, s *domain.Subscriber) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subscribers[s.Email]; ok {
		return domain.ErrConflict
	}
	f.next++
	s.ID = "sub-" + strconv.Itoa(f.next)
	s.Subscribed = true
	f.subscribers[s.Email] = *s
	return nil
}

func (f *fakeNewsletterRepo) Update(_ context.Context, s *domain.Subscriber) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subscribers[s.Email]; !ok {
		return domain.ErrNotFound
	}
	f.subscribers[s.Email] = *s
	return nil
}

// fakeMailer records sent messages for assertions.
type fakeMailer struct {
	mu       sync.Mutex
	messages []mailer.Message
	err      error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeMailer) sent() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]mailer.Message, len(f.messages))
	copy(out, f.messages)
	return out
}
