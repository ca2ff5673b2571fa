package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snowpeak/skistation/internal/models"
)

// DSNParams enable WAL, a busy timeout and foreign keys on every connection.
const DSNParams = "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

// Open connects to the sqlite file at path and migrates the schema.
// A nil log silences GORM.
func Open(path string, log *slog.Logger) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path+DSNParams), &gorm.Config{
		Logger: gormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	if log != nil {
		log.Info("database ready", "driver", "sqlite", "path", path)
	}
	return conn, nil
}

// Migrate creates the tables and the composite indexes GORM doesn't
// derive from struct tags.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.Subscription{},
		&models.Skier{},
		&models.Course{},
		&models.Instructor{},
		&models.Piste{},
		&models.Registration{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	stmts := []string{
		// one registration per skier, course and week
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_reg_skier_course_week ON registrations(skier_id, course_id, num_week)",
		// capacity counts
		"CREATE INDEX IF NOT EXISTS idx_reg_course_week ON registrations(course_id, num_week)",
	}
	for _, s := range stmts {
		if err := conn.Exec(s).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

func gormLogger(log *slog.Logger) logger.Interface {
	if log == nil {
		return logger.Default.LogMode(logger.Silent)
	}
	return logger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
