package db

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const MemoryDSN = ":memory:"

// OpenSQLite opens (creating if needed) the SQLite database at path and
// migrates the schema. Pass MemoryDSN for a throwaway database.
func OpenSQLite(path string, log *logrus.Logger) (*gorm.DB, error) {
	dsn := path
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "create database directory")
		}
		dsn = path + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	}

	gormLogger := logger.Discard
	if log != nil {
		gormLogger = logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel(log.GetLevel()),
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "sqlite handle")
	}
	if path == MemoryDSN {
		// every new connection to :memory: would see an empty database
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Token{}, &models.Announcement{}); err != nil {
		return nil, errors.Wrap(err, "auto migrate")
	}
	return db, nil
}

func gormLogLevel(level logrus.Level) logger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return logger.Info
	case level >= logrus.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}
