//go:build cgo

package repo_test

import (
	"testing"

	"github.com/rogerio-castellano/noticeboard/internal/db"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
	"github.com/stretchr/testify/require"
)

func newSQLiteBackend(t *testing.T) backend {
	database, err := db.OpenSQLite(db.MemoryDSN, nil)
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return backend{
		users:         repo.NewGormUserRepository(database),
		announcements: repo.NewGormAnnouncementRepository(database),
		tokens:        repo.NewGormTokenRepository(database),
		metrics:       repo.NewGormMetricsRepository(database),
	}
}

func TestGormRepositories(t *testing.T) {
	runRepositoryContract(t, newSQLiteBackend)
}
