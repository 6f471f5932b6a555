package postgres

import (
	"fmt"
	"time"

	"loadboard/internal/adapters/out/postgres/bookingrepo"
	"loadboard/internal/adapters/out/postgres/loadrepo"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectionConfig holds the libpq connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the config as a libpq keyword/value connection string.
func (c ConnectionConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode)
}

// Open connects to PostgreSQL and pings it.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the loads and bookings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&loadrepo.LoadDTO{}, &bookingrepo.BookingDTO{})
}
