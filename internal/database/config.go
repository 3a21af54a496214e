package database

import (
	"fmt"
	"strings"

	"finnews/internal/config"
)

// Driver identifies the SQL dialect behind a connection string.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Config holds database configuration
type Config struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig creates a database configuration from the application configuration
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		URL:      cfg.DatabaseURL,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
}

// Driver returns the dialect the configuration points at. URLs starting with
// "sqlite:" or "file:" select SQLite; everything else is PostgreSQL.
func (c *Config) Driver() Driver {
	if strings.HasPrefix(c.URL, "sqlite:") || strings.HasPrefix(c.URL, "file:") {
		return DriverSQLite
	}
	return DriverPostgres
}

// DSN returns the driver-specific connection string
func (c *Config) DSN() string {
	if c.Driver() == DriverSQLite {
		dsn := c.URL
		for _, prefix := range []string{"sqlite:///", "sqlite://", "sqlite:"} {
			if strings.HasPrefix(dsn, prefix) {
				return strings.TrimPrefix(dsn, prefix)
			}
		}
		return dsn
	}
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrationURL returns the postgres:// URL understood by golang-migrate
func (c *Config) MigrationURL() string {
	if strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://") {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}
