package database

import (
	"fmt"
	"strings"

	"github.com/lshigami/studydash/config"
	"github.com/lshigami/studydash/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase connects to Postgres when DATABASE_URL is set and falls back to
// a local SQLite file otherwise.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.URL != "" {
		log.Info().Msg("Connecting to PostgreSQL")
		return open(postgres.Open(cfg.Database.URL), cfg.Debug)
	}
	log.Info().Str("path", cfg.Database.SQLitePath).Msg("DATABASE_URL not set, using SQLite")
	return OpenSQLite(cfg.Database.SQLitePath, cfg.Debug)
}

// OpenSQLite opens a SQLite database. In-memory databases are pinned to a
// single connection so every query sees the same data.
func OpenSQLite(path string, debug bool) (*gorm.DB, error) {
	db, err := open(sqlite.Open(path), debug)
	if err != nil {
		return nil, err
	}
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func open(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates missing tables and adds missing columns. Existing rows
// keep a NULL owner.
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.AuthToken{},
		&model.ScheduleItem{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
		&model.Assignment{},
		&model.WeeklyGoal{},
		&model.StudyActivity{},
		&model.SubjectPerformance{},
		&model.Exam{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
