// Package testhelper provides a migrated PostgreSQL for repository and
// end-to-end tests, plus seed helpers for the review domain.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tarsojabbes/science/migrations"
)

// externalDSNEnv points the tests at an existing database instead of a
// container. The database must be disposable.
const externalDSNEnv = "TEST_DATABASE_DSN"

var (
	dbOnce sync.Once
	dbDSN  string
	dbErr  error
)

// SetupTestDB returns a pool on the shared, migrated test database. The
// database is prepared once per test binary; each call gets its own pool,
// closed on cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		dbDSN, dbErr = prepare(ctx)
	})
	if dbErr != nil {
		t.Fatalf("testhelper: %v", dbErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbDSN)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepare(ctx context.Context) (string, error) {
	dsn := os.Getenv(externalDSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startPostgres(ctx); err != nil {
			return "", err
		}
	}

	if err := migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

// startPostgres runs a throwaway postgres container. It is reaped by
// testcontainers when the test process exits.
func startPostgres(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "science",
				"POSTGRES_PASSWORD": "science",
				"POSTGRES_DB":       "science_test",
			},
			// postgres logs readiness twice: once for the init run, once for the real server.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve postgres endpoint: %w", err)
	}

	return fmt.Sprintf("postgres://science:science@%s/science_test?sslmode=disable", endpoint), nil
}

func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
