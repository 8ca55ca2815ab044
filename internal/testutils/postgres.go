package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/KirkDiggler/herald-bot/internal/storage/migrations"
	"github.com/KirkDiggler/herald-bot/internal/storage/postgres"
)

// PostgresContainer is a throwaway Postgres with the character schema applied
type PostgresContainer struct {
	container testcontainers.Container
	Pool      *postgres.Pool
	URL       string
}

// NewPostgresContainer starts Postgres in Docker, migrates it and connects a
// pool. Both are torn down with the test.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "herald",
				"POSTGRES_PASSWORD": "herald",
				"POSTGRES_DB":       "herald",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("starting postgres container: %v [%s]", err, time.Since(start))
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("getting container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("getting mapped port: %v", err)
	}

	url := fmt.Sprintf("postgres://herald:herald@%s:%d/herald?sslmode=disable", host, port.Int())

	if _, err := migrations.UpPostgres(url); err != nil {
		t.Fatalf("migrating test postgres: %v", err)
	}

	pool, err := postgres.NewPool(ctx, url)
	if err != nil {
		t.Fatalf("connecting to test postgres: %v [%s]", err, time.Since(start))
	}
	t.Cleanup(pool.Close)

	t.Logf("postgres container started [%s]", time.Since(start))

	return &PostgresContainer{container: container, Pool: pool, URL: url}
}
