package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dailyolive/olive-api/internal/platform/postgres"
)

// EnvDatabaseURL is the environment variable naming the test database.
const EnvDatabaseURL = "DATABASE_URL"

// MustOpen opens a connection to the test database named by DATABASE_URL and
// applies the schema migrations. Tests calling it are skipped when the
// variable is unset, so the integration suite only runs where a database is
// actually available. The connection is closed automatically when the test
// finishes.
func MustOpen(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(EnvDatabaseURL)
	if url == "" {
		t.Skipf("%s not set; skipping database integration test", EnvDatabaseURL)
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	goose.SetBaseFS(postgres.MigrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, postgres.MigrationsDir); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return db
}
