package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"aisle-finder/internal/config"
	"aisle-finder/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the catalog schema applied.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Go through the production pool constructor so its settings are exercised too
	dbConfig := config.DatabaseConfig{
		URL:             connStr,
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
		PingOnAcquire:   true,
	}

	pool, err := database.NewPool(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedProducts inserts a small catalog and returns the id of the first row ("牛乳 1L").
func SeedProducts(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name        string
		jan         any
		location    string
		description string
		category    string
		subcategory string
	}{
		{"牛乳 1L", "4901234567890", "通路 3", "成分無調整", "乳製品", "牛乳"},
		{"低脂肪乳", "4901234567891", "通路 3", "milk low fat", "乳製品", ""},
		{"食パン", "4909876543210", "通路 5", "6枚切り", "パン", ""},
		{"Organic Milk", nil, "通路 3", "", "乳製品", "牛乳"},
		{"オレンジジュース", "4500000000001", "通路 4", "果汁100%", "飲料", "ジュース"},
	}

	var firstID int64
	for i, p := range products {
		var id int64
		err := pool.QueryRow(ctx, `
			INSERT INTO products (name, jan_code, location, description, category, subcategory)
			VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
			RETURNING id`,
			p.name, p.jan, p.location, p.description, p.category, p.subcategory,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		if i == 0 {
			firstID = id
		}
	}

	return firstID
}

// SeedBulk inserts n products whose names all contain prefix.
func SeedBulk(t *testing.T, pool *pgxpool.Pool, prefix string, n int) {
	t.Helper()

	ctx := context.Background()

	for i := 0; i < n; i++ {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (name, location) VALUES ($1, $2)",
			fmt.Sprintf("%s %03d", prefix, i), "通路 9",
		)
		if err != nil {
			t.Fatalf("failed to seed bulk product %d: %v", i, err)
		}
	}
}

// CountSearchLogs returns the number of rows in search_logs.
func CountSearchLogs(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM search_logs").Scan(&n); err != nil {
		t.Fatalf("failed to count search logs: %v", err)
	}
	return n
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"search_logs", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
