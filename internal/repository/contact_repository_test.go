package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/listing"
	"cloudpillers-api/internal/repository"
)

func newContact(email string) *domain.Contact {
	return &domain.Contact{
		Name:    "Test Lead",
		Email:   email,
		Message: "We need help with our cloud bill.",
		Service: "finops",
		Status:  domain.ContactStatusNew,
	}
}

func TestPostgresContactRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresContactRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create fills generated fields", func(t *testing.T) {
		testDB.TruncateTables(t, "contacts")

		contact := newContact("lead@example.com")
		require.NoError(t, repo.Create(ctx, contact))

		assert.NotEmpty(t, contact.ID)
		assert.False(t, contact.CreatedAt.IsZero())

		stored, err := repo.GetByID(ctx, contact.ID)
		require.NoError(t, err)
		assert.Equal(t, "lead@example.com", stored.Email)
		assert.Equal(t, domain.ContactStatusNew, stored.Status)
	})

	t.Run("get unknown id returns not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update status", func(t *testing.T) {
		testDB.TruncateTables(t, "contacts")

		contact := newContact("lead@example.com")
		require.NoError(t, repo.Create(ctx, contact))

		updated, err := repo.UpdateStatus(ctx, contact.ID, "contacted")
		require.NoError(t, err)
		assert.Equal(t, "contacted", updated.Status)

		_, err = repo.UpdateStatus(ctx, uuid.New().String(), "contacted")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list filters by date window", func(t *testing.T) {
		testDB.TruncateTables(t, "contacts")

		recent := newContact("recent@example.com")
		require.NoError(t, repo.Create(ctx, recent))

		old := newContact("old@example.com")
		require.NoError(t, repo.Create(ctx, old))
		testDB.BackdateRow(t, "contacts", old.ID, time.Now().AddDate(0, 0, -30))

		contacts, total, err := repo.List(ctx, listing.RangeFor(listing.FilterWeek, time.Now()), 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, contacts, 1)
		assert.Equal(t, "recent@example.com", contacts[0].Email)

		contacts, total, err = repo.List(ctx, listing.DateRange{}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, contacts, 2)
	})

	t.Run("list paginates newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "contacts")

		for i := 0; i < 3; i++ {
			contact := newContact(uuid.New().String() + "@example.com")
			require.NoError(t, repo.Create(ctx, contact))
			testDB.BackdateRow(t, "contacts", contact.ID, time.Now().Add(-time.Duration(i)*time.Hour))
		}

		page1, total, err := repo.List(ctx, listing.DateRange{}, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page1, 2)
		assert.True(t, page1[0].CreatedAt.After(page1[1].CreatedAt))

		page2, _, err := repo.List(ctx, listing.DateRange{}, 2, 2)
		require.NoError(t, err)
		assert.Len(t, page2, 1)
	})
}
