package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/repository"
)

func TestPostgresNewsletterRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresNewsletterRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create defaults to subscribed", func(t *testing.T) {
		testDB.TruncateTables(t, "newsletter_subscribers")

		sub := &domain.Subscriber{Email: "reader@example.com", Name: "Reader"}
		require.NoError(t, repo.Create(ctx, sub))

		assert.NotEmpty(t, sub.ID)
		assert.True(t, sub.Subscribed)
		assert.False(t, sub.SubscribedAt.IsZero())
		assert.Nil(t, sub.UnsubscribedAt)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		testDB.TruncateTables(t, "newsletter_subscribers")

		require.NoError(t, repo.Create(ctx, &domain.Subscriber{Email: "dup@example.com"}))
		err := repo.Create(ctx, &domain.Subscriber{Email: "dup@example.com"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown email returns not found", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update flips subscription state", func(t *testing.T) {
		testDB.TruncateTables(t, "newsletter_subscribers")

		sub := &domain.Subscriber{Email: "reader@example.com", Name: "Reader"}
		require.NoError(t, repo.Create(ctx, sub))

		now := time.Now()
		sub.Subscribed = false
		sub.UnsubscribedAt = &now
		require.NoError(t, repo.Update(ctx, sub))

		stored, err := repo.GetByEmail(ctx, "reader@example.com")
		require.NoError(t, err)
		assert.False(t, stored.Subscribed)
		require.NotNil(t, stored.UnsubscribedAt)

		// Reactivation clears the unsubscribe stamp
		stored.Subscribed = true
		stored.SubscribedAt = time.Now()
		stored.UnsubscribedAt = nil
		stored.Name = "Returning Reader"
		require.NoError(t, repo.Update(ctx, stored))

		again, err := repo.GetByEmail(ctx, "reader@example.com")
		require.NoError(t, err)
		assert.True(t, again.Subscribed)
		assert.Nil(t, again.UnsubscribedAt)
		assert.Equal(t, "Returning Reader", again.Name)
	})
}
