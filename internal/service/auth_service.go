package service

import (
	"context"
	"fmt"

	"cloudpillers-api/internal/auth"
	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/repository"
)

// AuthService implements admin account and session operations on top of
// the user repository.
type AuthService struct {
	users  repository.UserRepository
	issuer *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// Login verifies credentials and returns a signed bearer token with the
// authenticated user. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// Register creates a new admin-panel account. An empty role defaults to
// editor.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if role == "" {
		role = domain.RoleEditor
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves one account by ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers returns all accounts.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes an account. Deleting the acting user's own account
// is rejected with domain.ErrSelfDelete.
func (s *AuthService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrSelfDelete
	}
	return s.users.Delete(ctx, targetID)
}
