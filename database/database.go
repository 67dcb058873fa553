package database

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/melcantwell27/quizWhiz/config"
	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the configured database. Postgres is the default;
// sqlite is meant for local runs and tests.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	switch cfg.Database.Driver {
	case "sqlite":
		dsn := cfg.Database.DSN
		if dsn == "" {
			dsn = "quizwhiz.db"
		}
		return OpenSQLite(dsn, gormCfg)
	case "postgres", "":
		dsn := cfg.Database.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
				cfg.Database.Host,
				cfg.Database.User,
				cfg.Database.Password,
				cfg.Database.Name,
				cfg.Database.Port,
				cfg.Database.SSLMode,
			)
		}
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			log.Error().Err(err).Str("host", cfg.Database.Host).Msg("Failed to connect to postgres")
			return nil, err
		}
		log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("Connected to postgres")
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// OpenSQLite opens a sqlite database with foreign keys enforced. SQLite
// allows one writer, so the pool is capped at a single connection.
func OpenSQLite(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if gormCfg == nil {
		gormCfg = &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := gorm.Open(sqlite.Open(dsn+sep+"_pragma=foreign_keys(1)"), gormCfg)
	if err != nil {
		log.Error().Err(err).Str("dsn", dsn).Msg("Failed to open sqlite database")
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	log.Info().Str("dsn", dsn).Msg("Opened sqlite database")
	return db, nil
}

// Migrate creates or updates every table used by the service.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.MCQ{},
		&model.Choice{},
		&model.FTQ{},
		&model.Student{},
		&model.Attempt{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
