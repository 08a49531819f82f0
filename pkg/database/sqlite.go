package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/tirumala-planners/site-backend/config"
	"github.com/tirumala-planners/site-backend/internal/domain"
)

const pingTimeout = 5 * time.Second

// NewClient opens the SQLite database from central config.
func NewClient(cfg config.DatabaseConfig) (*gorm.DB, error) {
	return NewClientFromConfig(FromCentralConfig(cfg))
}

// NewClientFromConfig opens the SQLite database from package Config.
// modernc registers itself as "sqlite", so the GORM dialector needs an
// explicit driver name and a pre-opened connection.
func NewClientFromConfig(cfg Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	dialector := sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        cfg.Path,
		Conn:       sqlDB,
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Silent keeps submitted form contents out of the logs.
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Ping(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the contacts table if it does not exist. Safe to run
// on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Inquiry{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping verifies the connection is usable.
func Ping(db *gorm.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
