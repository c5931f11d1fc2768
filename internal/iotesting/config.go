// Package iotesting provides shared utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/kriptogan/dexnorm/internal/iodb"
	"github.com/kriptogan/dexnorm/pkg/config"
	"github.com/kriptogan/dexnorm/pkg/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDatabaseName is the database name used for all integration tests.
// Tests never run against the configured publishing database.
const TestDatabaseName = "dexnorm_test"

// GetTestConfig returns a configuration suitable for integration tests.
// It starts from defaults, applies DEXNORM_DATABASE_* environment
// variables and forces the database name to TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("DEXNORM_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("DEXNORM_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if s := os.Getenv("DEXNORM_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("DEXNORM_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	if s := os.Getenv("DEXNORM_DATABASE_SSL_MODE"); s != "" {
		opts = append(opts, config.OptDatabaseSSLMode(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// ConnectOrSkip connects to the test database or skips the test in
// short mode. When the configured PostgreSQL is unreachable, a shared
// PostgreSQL container is started; the test is skipped if that fails
// too. The connection is closed on test cleanup.
func ConnectOrSkip(t *testing.T) db.Operator {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, GetTestDatabaseConfig())
	if err != nil {
		once.Do(func() {
			containerCfg, containerErr = startContainer()
		})
		if containerErr != nil {
			t.Skipf("PostgreSQL is not available: %v; %v", err, containerErr)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err = op.Connect(ctx, containerCfg); err != nil {
			t.Skipf("PostgreSQL container is not available: %v", err)
		}
	}
	t.Cleanup(func() { _ = op.Close() })
	return op
}

var (
	once         sync.Once
	containerCfg *config.DatabaseConfig
	containerErr error
)

// startContainer runs PostgreSQL in a container that lives until the
// test process exits.
func startContainer() (*config.DatabaseConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       TestDatabaseName,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	cfg := GetTestConfig()
	cfg.Update([]config.Option{
		config.OptDatabaseHost(host),
		config.OptDatabasePort(port.Int()),
		config.OptDatabaseUser("testuser"),
		config.OptDatabasePassword("testpass"),
		config.OptDatabaseSSLMode("disable"),
	})
	return &cfg.Database, nil
}
