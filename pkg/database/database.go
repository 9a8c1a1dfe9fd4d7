package database

import (
	"fmt"

	"dawah-portal/internal/model"
	"dawah-portal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the store selected by cfg.DBDriver. "memory" runs against a
// shared in-memory sqlite database, anything else connects to postgres.
func New(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var db *gorm.DB
	var err error

	if cfg.DBDriver == "memory" {
		// cache=shared keeps every connection on the same database
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormConfig)
	} else {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.CategoryModel{},
		&model.ArticleModel{},
		&model.VideoModel{},
		&model.QuestionModel{},
		&model.AnswerModel{},
		&model.UserModel{},
		&model.CommentModel{},
	)
}
