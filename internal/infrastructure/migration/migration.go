// Package migration runs schema migrations with goose, with a GORM
// AutoMigrate fallback for development environments.
package migration

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/darasa-app/darasa/internal/infrastructure/persistence/models"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

// Manager runs goose migrations from a scripts directory.
type Manager struct {
	scriptsPath string
	dialect     string
	logger      logger.Interface
}

// NewManager creates a migration manager. Driver is the database driver name
// from configuration ("mysql" or "sqlite").
func NewManager(scriptsPath, driver string) *Manager {
	dialect := "mysql"
	if driver == "sqlite" {
		dialect = "sqlite3"
	}
	return &Manager{
		scriptsPath: scriptsPath,
		dialect:     dialect,
		logger:      logger.NewLogger().With("component", "migration.goose"),
	}
}

// Up applies all pending migrations.
func (m *Manager) Up(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		m.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	m.logger.Infow("starting migration",
		"scripts_path", m.scriptsPath,
		"version", currentVersion)

	if err := goose.Up(sqlDB, m.scriptsPath); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migration completed",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

// Down rolls back the given number of migrations.
func (m *Manager) Down(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, m.scriptsPath); err != nil {
			m.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	m.logger.Infow("down migration completed", "steps", steps)
	return nil
}

// Status prints the migration status.
func (m *Manager) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, m.scriptsPath); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}

// Create generates a new timestamped SQL migration file.
func (m *Manager) Create(name string) error {
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, m.scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	m.logger.Infow("migration created", "name", name)
	return nil
}

// AutoMigrate applies GORM schema migration for all persistence models.
// Intended for development only; production uses the SQL scripts.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.LessonModel{},
		&models.LessonSlotModel{},
		&models.QuizQuestionModel{},
		&models.FlashcardModel{},
		&models.ExamTaskModel{},
		&models.ProgressModel{},
		&models.SubscriptionModel{},
		&models.PurchaseModel{},
	)
}
