package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/rogerio-castellano/noticeboard/internal/models"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	users         repo.UserRepository
	announcements repo.AnnouncementRepository
	tokens        repo.TokenRepository
	metrics       repo.MetricsRepository
}

// runRepositoryContract checks the behaviour every storage backend must share.
// newBackend must return empty stores on each call.
func runRepositoryContract(t *testing.T, newBackend func(t *testing.T) backend) {
	t.Run("users", func(t *testing.T) { testUsers(t, newBackend) })
	t.Run("announcements", func(t *testing.T) { testAnnouncements(t, newBackend) })
	t.Run("tokens", func(t *testing.T) { testTokens(t, newBackend) })
	t.Run("metrics", func(t *testing.T) { testMetrics(t, newBackend) })
}

func testUsers(t *testing.T, newBackend func(t *testing.T) backend) {
	ctx := context.Background()

	t.Run("create assigns an id", func(t *testing.T) {
		users := newBackend(t).users
		created, err := users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h", Email: "alice@example.com"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		found, err := users.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "alice@example.com", found.Email)
		assert.Equal(t, "h", found.PasswordHash)
	})

	t.Run("duplicate username is rejected and first user kept", func(t *testing.T) {
		users := newBackend(t).users
		first, err := users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "first", Email: "alice@example.com"})
		require.NoError(t, err)

		_, err = users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "second", Email: "other@example.com"})
		require.ErrorIs(t, err, repo.ErrDuplicatedValueUnique)

		found, err := users.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, first.ID, found.ID)
		assert.Equal(t, "first", found.PasswordHash)
		assert.Equal(t, "alice@example.com", found.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		users := newBackend(t).users
		_, err := users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h", Email: "shared@example.com"})
		require.NoError(t, err)

		_, err = users.CreateUser(ctx, models.User{Username: "bob", PasswordHash: "h", Email: "shared@example.com"})
		require.ErrorIs(t, err, repo.ErrDuplicatedValueUnique)

		missing, err := users.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("unknown username is not an error", func(t *testing.T) {
		users := newBackend(t).users
		found, err := users.GetByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func testAnnouncements(t *testing.T, newBackend func(t *testing.T) backend) {
	ctx := context.Background()

	t.Run("create starts the view counter at zero", func(t *testing.T) {
		store := newBackend(t).announcements
		created, err := store.Create(ctx, models.Announcement{Title: "T", Content: "C", AuthorID: 1, Views: 42})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Zero(t, created.Views)

		views, err := store.GetViews(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.AnnouncementViews{AnnouncementID: created.ID, Views: 0}, views)
	})

	t.Run("update replaces title and content only", func(t *testing.T) {
		store := newBackend(t).announcements
		created, err := store.Create(ctx, models.Announcement{Title: "old", Content: "old body", AuthorID: 7})
		require.NoError(t, err)

		updated, err := store.Update(ctx, created.ID, "new", "new body")
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "new", updated.Title)
		assert.Equal(t, "new body", updated.Content)
		assert.Equal(t, 7, updated.AuthorID)
		assert.Zero(t, updated.Views)

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "new", all[0].Title)
	})

	t.Run("update of a missing id leaves the store unchanged", func(t *testing.T) {
		store := newBackend(t).announcements
		created, err := store.Create(ctx, models.Announcement{Title: "T", Content: "C", AuthorID: 1})
		require.NoError(t, err)

		_, err = store.Update(ctx, created.ID+100, "X", "Y")
		require.ErrorIs(t, err, repo.ErrAnnouncementNotFound)

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "T", all[0].Title)
		assert.Equal(t, "C", all[0].Content)
	})

	t.Run("deleted announcement has no views", func(t *testing.T) {
		store := newBackend(t).announcements
		created, err := store.Create(ctx, models.Announcement{Title: "T", Content: "C", AuthorID: 1})
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, created.ID))

		_, err = store.GetViews(ctx, created.ID)
		require.ErrorIs(t, err, repo.ErrAnnouncementNotFound)
		require.ErrorIs(t, store.Delete(ctx, created.ID), repo.ErrAnnouncementNotFound)
	})

	t.Run("empty store lists an empty slice", func(t *testing.T) {
		store := newBackend(t).announcements
		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("search matches literal case-sensitive substrings", func(t *testing.T) {
		store := newBackend(t).announcements
		seed := []models.Announcement{
			{Title: "foobar", Content: "x", AuthorID: 1},
			{Title: "y", Content: "z", AuthorID: 1},
			{Title: "Foo", Content: "upper", AuthorID: 2},
			{Title: "discount", Content: "100% off_today", AuthorID: 2},
		}
		ids := make([]int, len(seed))
		for i, a := range seed {
			created, err := store.Create(ctx, a)
			require.NoError(t, err)
			ids[i] = created.ID
		}

		tests := []struct {
			query string
			want  []int
		}{
			{query: "foo", want: []int{ids[0]}},
			{query: "Foo", want: []int{ids[2]}},
			{query: "z", want: []int{ids[1]}},
			{query: "%", want: []int{ids[3]}},
			{query: "f_", want: []int{ids[3]}},
			{query: "nothing", want: []int{}},
		}
		for _, tt := range tests {
			t.Run(tt.query, func(t *testing.T) {
				found, err := store.Search(ctx, tt.query)
				require.NoError(t, err)
				assert.NotNil(t, found)
				got := []int{}
				for _, a := range found {
					got = append(got, a.ID)
				}
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("list by author ignores other authors", func(t *testing.T) {
		store := newBackend(t).announcements
		mine1, err := store.Create(ctx, models.Announcement{Title: "a", Content: "a", AuthorID: 1})
		require.NoError(t, err)
		_, err = store.Create(ctx, models.Announcement{Title: "b", Content: "b", AuthorID: 2})
		require.NoError(t, err)
		mine2, err := store.Create(ctx, models.Announcement{Title: "c", Content: "c", AuthorID: 1})
		require.NoError(t, err)

		found, err := store.GetByAuthor(ctx, 1)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, mine1.ID, found[0].ID)
		assert.Equal(t, mine2.ID, found[1].ID)

		none, err := store.GetByAuthor(ctx, 3)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})
}

func testTokens(t *testing.T, newBackend func(t *testing.T) backend) {
	ctx := context.Background()

	t.Run("save assigns an id and rejects duplicates", func(t *testing.T) {
		tokens := newBackend(t).tokens
		expiresAt := time.Now().Add(30 * time.Minute).Truncate(time.Second)

		saved, err := tokens.Save(ctx, models.Token{Token: "tok-1", Username: "alice", ExpiresAt: expiresAt})
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.True(t, saved.ExpiresAt.Equal(expiresAt))

		_, err = tokens.Save(ctx, models.Token{Token: "tok-1", Username: "alice", ExpiresAt: expiresAt})
		require.ErrorIs(t, err, repo.ErrDuplicatedValueUnique)

		other, err := tokens.Save(ctx, models.Token{Token: "tok-2", Username: "alice", ExpiresAt: expiresAt})
		require.NoError(t, err)
		assert.NotEqual(t, saved.ID, other.ID)
	})
}

func testMetrics(t *testing.T, newBackend func(t *testing.T) backend) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		m, err := newBackend(t).metrics.GetDashboardMetrics(ctx)
		require.NoError(t, err)
		assert.Equal(t, repo.Metrics{}, m)
	})

	t.Run("counts and top author", func(t *testing.T) {
		b := newBackend(t)
		alice, err := b.users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h", Email: "alice@example.com"})
		require.NoError(t, err)
		bob, err := b.users.CreateUser(ctx, models.User{Username: "bob", PasswordHash: "h", Email: "bob@example.com"})
		require.NoError(t, err)

		for _, authorID := range []int{bob.ID, alice.ID, bob.ID} {
			_, err := b.announcements.Create(ctx, models.Announcement{Title: "t", Content: "c", AuthorID: authorID})
			require.NoError(t, err)
		}

		m, err := b.metrics.GetDashboardMetrics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, m.TotalUsers)
		assert.Equal(t, 3, m.TotalAnnouncements)
		assert.Zero(t, m.TotalViews)
		assert.Equal(t, repo.TopAuthor{Username: "bob", AnnouncementCount: 2}, m.TopAuthor)
	})
}
