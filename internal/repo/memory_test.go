package repo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rogerio-castellano/noticeboard/internal/models"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryBackend(t *testing.T) backend {
	users := repo.NewInMemoryUserRepository()
	announcements := repo.NewInMemoryAnnouncementRepository()
	return backend{
		users:         users,
		announcements: announcements,
		tokens:        repo.NewInMemoryTokenRepository(),
		metrics:       repo.NewInMemoryMetricsRepository(users, announcements),
	}
}

func TestInMemoryRepositories(t *testing.T) {
	runRepositoryContract(t, newMemoryBackend)
}

func TestInMemoryAnnouncementRepository_ConcurrentCreates(t *testing.T) {
	store := repo.NewInMemoryAnnouncementRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, models.Announcement{Title: "t", Content: "c", AuthorID: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)

	seen := make(map[int]bool)
	for _, a := range all {
		assert.False(t, seen[a.ID], "duplicate id %d", a.ID)
		seen[a.ID] = true
	}
}

func TestInMemoryAnnouncementRepository_ReturnsCopies(t *testing.T) {
	store := repo.NewInMemoryAnnouncementRepository()
	ctx := context.Background()

	_, err := store.Create(ctx, models.Announcement{Title: "t", Content: "c", AuthorID: 1})
	require.NoError(t, err)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	all[0].Title = "mutated"

	again, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t", again[0].Title)
}
