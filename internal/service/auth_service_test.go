package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudpillers-api/internal/auth"
	"cloudpillers-api/internal/domain"
)

func newAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewAuthService(users, issuer), users
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	user, err := svc.Register(ctx, "Root Admin", "admin@cloudpillers.com", "hunter22", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "admin", user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "password must be stored hashed")

	token, loggedIn, err := svc.Login(ctx, "admin@cloudpillers.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestAuthService_RegisterDefaultsToEditor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	user, err := svc.Register(ctx, "Writer", "writer@cloudpillers.com", "hunter22", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEditor, user.Role)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "Root Admin", "admin@cloudpillers.com", "hunter22", "admin")
	require.NoError(t, err)

	_, _, unknownEmail := svc.Login(ctx, "nobody@cloudpillers.com", "hunter22")
	_, _, wrongPassword := svc.Login(ctx, "admin@cloudpillers.com", "wrong")

	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "First", "admin@cloudpillers.com", "hunter22", "admin")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Second", "admin@cloudpillers.com", "hunter22", "admin")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	admin, err := svc.Register(ctx, "Root Admin", "admin@cloudpillers.com", "hunter22", "admin")
	require.NoError(t, err)
	editor, err := svc.Register(ctx, "Writer", "writer@cloudpillers.com", "hunter22", "editor")
	require.NoError(t, err)

	t.Run("cannot delete own account", func(t *testing.T) {
		err := svc.DeleteUser(ctx, admin.ID, admin.ID)
		assert.ErrorIs(t, err, domain.ErrSelfDelete)
	})

	t.Run("deletes other account", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctx, admin.ID, editor.ID))
		_, err := svc.GetUser(ctx, editor.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown target", func(t *testing.T) {
		err := svc.DeleteUser(ctx, admin.ID, "user-999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
