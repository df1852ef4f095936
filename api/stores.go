package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rogerio-castellano/noticeboard/internal/config"
	"github.com/rogerio-castellano/noticeboard/internal/db"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
	"github.com/sirupsen/logrus"
)

type stores struct {
	users         repo.UserRepository
	announcements repo.AnnouncementRepository
	tokens        repo.TokenRepository
	metrics       repo.MetricsRepository

	closers []io.Closer
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i].Close()
	}
}

func openStores(ctx context.Context, cfg config.Config, log *logrus.Logger) (*stores, error) {
	st := &stores{}

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		database, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, database)
		if err := db.MigratePostgres(ctx, database); err != nil {
			st.Close()
			return nil, err
		}
		st.users = repo.NewPostgresUserRepository(database)
		st.announcements = repo.NewPostgresAnnouncementRepository(database)
		st.tokens = repo.NewPostgresTokenRepository(database)
		st.metrics = repo.NewPostgresMetricsRepository(database)

	case config.StorageSQLite:
		database, err := db.OpenSQLite(cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		sqlDB, err := database.DB()
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, sqlDB)
		st.users = repo.NewGormUserRepository(database)
		st.announcements = repo.NewGormAnnouncementRepository(database)
		st.tokens = repo.NewGormTokenRepository(database)
		st.metrics = repo.NewGormMetricsRepository(database)

	case config.StorageMemory:
		log.Warn("Using in-memory storage, data is lost on restart")
		users := repo.NewInMemoryUserRepository()
		announcements := repo.NewInMemoryAnnouncementRepository()
		st.users = users
		st.announcements = announcements
		st.tokens = repo.NewInMemoryTokenRepository()
		st.metrics = repo.NewInMemoryMetricsRepository(users, announcements)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.TokenStore == config.TokenStoreRedis {
		rdb, err := db.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			st.Close()
			return nil, err
		}
		st.closers = append(st.closers, rdb)
		st.tokens = repo.NewRedisTokenRepository(rdb)
	}

	return st, nil
}
