package handler

import (
	"context"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/service"
)

// Function-field stubs for the service interfaces. Only the methods a
// test sets are expected to be called.

type stubAuthService struct {
	login    func(ctx context.Context, email, password string) (string, *domain.User, error)
	register func(ctx context.Context, name, email, password, role string) (*domain.User, error)
	getUser  func(ctx context.Context, id string) (*domain.User, error)
	list     func(ctx context.Context) ([]domain.User, error)
	delete   func(ctx context.Context, actorID, targetID string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.login(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	return s.register(ctx, name, email, password, role)
}

func (s *stubAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getUser(ctx, id)
}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.list(ctx)
}

func (s *stubAuthService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	return s.delete(ctx, actorID, targetID)
}

type stubLeadService struct {
	createContact func(ctx context.Context, contact *domain.Contact) error
	listContacts  func(ctx context.Context, filter string, page, limit int) ([]domain.Contact, service.PageInfo, error)
	getContact    func(ctx context.Context, id string) (*domain.Contact, error)
	updateStatus  func(ctx context.Context, id, status string) (*domain.Contact, error)

	createAssessment func(ctx context.Context, assessment *domain.Assessment) error
	listAssessments  func(ctx context.Context, filter string, page, limit int) ([]domain.Assessment, service.PageInfo, error)
	getAssessment    func(ctx context.Context, id string) (*domain.Assessment, error)
}

func (s *stubLeadService) CreateContact(ctx context.Context, contact *domain.Contact) error {
	return s.createContact(ctx, contact)
}

func (s *stubLeadService) ListContacts(ctx context.Context, filter string, page, limit int) ([]domain.Contact, service.PageInfo, error) {
	return s.listContacts(ctx, filter, page, limit)
}

func (s *stubLeadService) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	return s.getContact(ctx, id)
}

func (s *stubLeadService) UpdateContactStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	return s.updateStatus(ctx, id, status)
}

func (s *stubLeadService) CreateAssessment(ctx context.Context, assessment *domain.Assessment) error {
	return s.createAssessment(ctx, assessment)
}

func (s *stubLeadService) ListAssessments(ctx context.Context, filter string, page, limit int) ([]domain.Assessment, service.PageInfo, error) {
	return s.listAssessments(ctx, filter, page, limit)
}

func (s *stubLeadService) GetAssessment(ctx context.Context, id string) (*domain.Assessment, error) {
	return s.getAssessment(ctx, id)
}

type stubBlogService struct {
	create        func(ctx context.Context, post *domain.BlogPost) error
	update        func(ctx context.Context, post *domain.BlogPost) error
	deleteFn      func(ctx context.Context, id string) error
	getByID       func(ctx context.Context, id string) (*domain.BlogPost, error)
	getBySlug     func(ctx context.Context, slug string) (*domain.BlogPost, error)
	listPublished func(ctx context.Context, category, search string, page, limit int) ([]domain.BlogPost, service.PageInfo, error)
	listAll       func(ctx context.Context) ([]domain.BlogPost, error)
	publish       func(ctx context.Context, id string) (*domain.BlogPost, error)
}

func (s *stubBlogService) Create(ctx context.Context, post *domain.BlogPost) error {
	return s.create(ctx, post)
}

func (s *stubBlogService) Update(ctx context.Context, post *domain.BlogPost) error {
	return s.update(ctx, post)
}

func (s *stubBlogService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubBlogService) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.getByID(ctx, id)
}

func (s *stubBlogService) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.getBySlug(ctx, slug)
}

func (s *stubBlogService) ListPublished(ctx context.Context, category, search string, page, limit int) ([]domain.BlogPost, service.PageInfo, error) {
	return s.listPublished(ctx, category, search, page, limit)
}

func (s *stubBlogService) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	return s.listAll(ctx)
}

func (s *stubBlogService) Publish(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.publish(ctx, id)
}

type stubNewsletterService struct {
	subscribe   func(ctx context.Context, email, name string) (*domain.Subscriber, error)
	unsubscribe func(ctx context.Context, email string) error
}

func (s *stubNewsletterService) Subscribe(ctx context.Context, email, name string) (*domain.Subscriber, error) {
	return s.subscribe(ctx, email, name)
}

func (s *stubNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	return s.unsubscribe(ctx, email)
}
