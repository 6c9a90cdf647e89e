// Package database opens the gorm connection and prepares the schema.
package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/labcrm/crm-api/internal/config"
	"github.com/labcrm/crm-api/internal/domain"
)

// Open connects to the configured database. sqlite (the default) keeps
// the whole store in process memory unless a file DSN is set, which
// mirrors how volatile this dataset is expected to be; postgres is the
// durable option.
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
	default:
		db, err = gorm.Open(sqlite.Open(cfg.SQLiteDSN()), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.Info("connected to database", zap.String("driver", cfg.Driver))
	return db, nil
}

// Migrate creates or updates the schema. Postgres deployments normally
// run cmd/migrate instead; automigrate covers sqlite and development.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Company{},
		&domain.Contact{},
		&domain.Quotation{},
		&domain.Contract{},
		&domain.Study{},
		&domain.Meeting{},
		&domain.Task{},
		&domain.Notification{},
		&domain.User{},
	)
}

// SeedAdmin ensures the admin account exists. Without it a fresh
// in-memory store would be unreachable behind auth.
func SeedAdmin(db *gorm.DB, cfg config.AuthConfig, log *zap.Logger) error {
	if cfg.AdminPassword == "" {
		log.Warn("no admin password configured, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&domain.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := domain.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Info("seeded admin user", zap.String("username", cfg.AdminUsername))
	return nil
}

// Ping verifies the connection is alive.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
