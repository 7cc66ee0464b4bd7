package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/chronodesk/chronodesk/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// Store is the injected Record Store. All reads and writes go through
// it; the analytics core takes it as a dependency and never opens its
// own connection.
type Store struct {
	db       *gorm.DB
	validate *validator.Validate
}

// DefaultPath returns the default SQLite database location
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".chronodesk", "chronodesk.db"), nil
}

// Open connects to the database, runs migrations and seeds defaults
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create chronodesk directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &Store{db: gdb, validate: validator.New()}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := store.seedDefaults(); err != nil {
		return nil, fmt.Errorf("failed to seed defaults: %w", err)
	}
	return store, nil
}

// migrate creates/updates the database schema
func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.SessionType{},
		&models.Session{},
		&models.FinancialGoal{},
		&models.Habit{},
		&models.HabitLog{},
		&models.AppEvent{},
		&models.UnlockedAchievement{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.License{},
		&models.Setting{},
		&models.Project{},
	)
}

// seedDefaults creates the two starter categories on first run
func (s *Store) seedDefaults() error {
	var count int64
	if err := s.db.Model(&models.SessionType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	rate := 30.0
	defaults := []models.SessionType{
		{Name: "Work", Color: "#22C55E", HourlyRate: &rate},
		{Name: "Study", Color: "#3B82F6"},
	}
	return s.db.Create(&defaults).Error
}

// Close closes the underlying connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
