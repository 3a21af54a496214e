package database

import (
	"testing"

	"finnews/internal/config"
)

func TestConfig_Driver(t *testing.T) {
	tests := []struct {
		url  string
		want Driver
	}{
		{"", DriverPostgres},
		{"postgres://u:p@db:5432/news?sslmode=disable", DriverPostgres},
		{"sqlite:///./test.db", DriverSQLite},
		{"file::memory:?cache=shared", DriverSQLite},
	}
	for _, tt := range tests {
		c := &Config{URL: tt.url}
		if got := c.Driver(); got != tt.want {
			t.Errorf("Driver(%q) = %s, want %s", tt.url, got, tt.want)
		}
	}
}

func TestConfig_DSN(t *testing.T) {
	t.Run("sqlite strips scheme", func(t *testing.T) {
		c := &Config{URL: "sqlite:///./test.db"}
		if got := c.DSN(); got != "./test.db" {
			t.Errorf("expected ./test.db, got %q", got)
		}
	})

	t.Run("postgres from parts", func(t *testing.T) {
		c := NewConfig(&config.Config{
			DBHost: "localhost", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "news", DBSSLMode: "disable",
		})
		want := "host=localhost port=5432 user=u password=p dbname=news sslmode=disable"
		if got := c.DSN(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
		if got := c.MigrationURL(); got != "postgres://u:p@localhost:5432/news?sslmode=disable" {
			t.Errorf("unexpected migration url %q", got)
		}
	})

	t.Run("postgres url passes through", func(t *testing.T) {
		url := "postgresql://u:p@db/news"
		c := &Config{URL: url}
		if c.DSN() != url || c.MigrationURL() != url {
			t.Errorf("expected url to pass through unchanged")
		}
	})
}

func TestManager_SQLiteMigrate(t *testing.T) {
	m, err := NewManager(&Config{URL: "file:managertest?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("failed to open manager: %v", err)
	}
	defer func() { _ = m.Close() }()

	if err := m.Migrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, table := range []string{"users", "assets", "asset_prices", "news", "asset_mentions", "analyses", "annotations", "audit_logs"} {
		if !m.DB().Migrator().HasTable(table) {
			t.Errorf("expected table %q to exist", table)
		}
	}
}
