package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/repository"
)

func seedAuthor(t *testing.T, testDB *TestDB) string {
	t.Helper()
	users := repository.NewPostgresUserRepository(testDB.Pool)
	author := &domain.User{
		Name:         "Author",
		Email:        "author@cloudpillers.com",
		Role:         domain.RoleEditor,
		PasswordHash: "x",
	}
	require.NoError(t, users.Create(context.Background(), author))
	return author.ID
}

func TestPostgresBlogRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresBlogRepository(testDB.Pool)
	ctx := context.Background()

	newPost := func(authorID, title, slug string) *domain.BlogPost {
		return &domain.BlogPost{
			Title:    title,
			Slug:     slug,
			Content:  "Body text about kubernetes clusters.",
			AuthorID: authorID,
			Category: "devops",
		}
	}

	t.Run("drafts stay out of the public surface", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_posts", "users")
		authorID := seedAuthor(t, testDB)

		post := newPost(authorID, "Draft Post", "draft-post")
		require.NoError(t, repo.Create(ctx, post))
		require.NotEmpty(t, post.ID)

		_, err := repo.GetPublishedBySlug(ctx, "draft-post")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		posts, total, err := repo.ListPublished(ctx, "", "", 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, posts)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("publish stamps published_at and exposes the post", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_posts", "users")
		authorID := seedAuthor(t, testDB)

		post := newPost(authorID, "Going Live", "going-live")
		require.NoError(t, repo.Create(ctx, post))

		published, err := repo.Publish(ctx, post.ID)
		require.NoError(t, err)
		assert.True(t, published.Published)
		require.NotNil(t, published.PublishedAt)

		stored, err := repo.GetPublishedBySlug(ctx, "going-live")
		require.NoError(t, err)
		assert.Equal(t, post.ID, stored.ID)
		require.NotNil(t, stored.Author)
		assert.Equal(t, "Author", stored.Author.Name)
	})

	t.Run("published list honors category and search filters", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_posts", "users")
		authorID := seedAuthor(t, testDB)

		devops := newPost(authorID, "Pipelines", "pipelines")
		require.NoError(t, repo.Create(ctx, devops))
		_, err := repo.Publish(ctx, devops.ID)
		require.NoError(t, err)

		security := newPost(authorID, "Zero Trust", "zero-trust")
		security.Category = "security"
		security.Content = "Network segmentation guidance."
		require.NoError(t, repo.Create(ctx, security))
		_, err = repo.Publish(ctx, security.ID)
		require.NoError(t, err)

		posts, total, err := repo.ListPublished(ctx, "security", "", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, posts, 1)
		assert.Equal(t, "zero-trust", posts[0].Slug)

		posts, total, err = repo.ListPublished(ctx, "", "kubernetes", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, posts, 1)
		assert.Equal(t, "pipelines", posts[0].Slug)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_posts", "users")
		authorID := seedAuthor(t, testDB)

		require.NoError(t, repo.Create(ctx, newPost(authorID, "One", "same-slug")))
		err := repo.Create(ctx, newPost(authorID, "Two", "same-slug"))
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("view counter increments", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_posts", "users")
		authorID := seedAuthor(t, testDB)

		post := newPost(authorID, "Counted", "counted")
		require.NoError(t, repo.Create(ctx, post))

		require.NoError(t, repo.IncrementViews(ctx, post.ID))
		require.NoError(t, repo.IncrementViews(ctx, post.ID))

		stored, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Views)
	})
}
