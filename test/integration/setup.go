package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"glowkart/internal/auth"
	"glowkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
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

// SetupTestDB creates a PostgreSQL test container and connection pool.
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

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

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

// createSchema applies scripts/schema.sql so tests run against the same DDL
// deployments use.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	schema, err := os.ReadFile(filepath.Join("..", "..", "scripts", "schema.sql"))
	if err != nil {
		t.Fatalf("failed to read schema file: %v", err)
	}

	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts test catalogue data and returns it, ordered by name.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []model.Product {
	t.Helper()

	ctx := context.Background()

	products := []model.Product{
		{ID: uuid.New(), Name: "Glow Diffuser Classic", Price: 24.99, ShippingPrice: 4.50, SKU: "GD-100", Category: "diffusers", Stock: 50, IsActive: true},
		{ID: uuid.New(), Name: "Glow Diffuser Pro", Price: 39.99, FreeShipping: true, SKU: "GD-200", Category: "diffusers", Stock: 25, IsActive: true, IsFeatured: true},
		{ID: uuid.New(), Name: "Lens Mount Kit", Price: 12.50, ShippingPrice: 2.00, SKU: "LM-010", Category: "accessories", Stock: 100, IsActive: true},
		{ID: uuid.New(), Name: "Soft Filter Pack", Price: 18.00, ShippingPrice: 3.00, SKU: "SF-005", Category: "filters", Stock: 3, IsActive: true},
		{ID: uuid.New(), Name: "Vintage Diffuser", Price: 29.00, ShippingPrice: 4.00, SKU: "VD-001", Category: "diffusers", Stock: 10, IsActive: false},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, price, shipping_price, free_shipping, sku,
				category, stock, is_active, is_featured, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`,
			p.ID, p.Name, p.Price, p.ShippingPrice, p.FreeShipping, p.SKU,
			p.Category, p.Stock, p.IsActive, p.IsFeatured,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.SKU, err)
		}
	}

	return products
}

// SeedUser inserts a user with the given role and returns its ID.
func SeedUser(t *testing.T, pool *pgxpool.Pool, name, email, password, role string) uuid.UUID {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	id := uuid.New()
	_, err = pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, address, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())`,
		id, name, email, hash, model.Address{}, role,
	)
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}

	return id
}

// SeedCoupon inserts a coupon and returns its ID.
func SeedCoupon(t *testing.T, pool *pgxpool.Pool, c model.Coupon) uuid.UUID {
	t.Helper()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO coupons (id, code, discount_type, discount_value, min_order_value,
			max_discount, usage_limit, used_count, expiry_date, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`,
		c.ID, c.Code, c.DiscountType, c.DiscountValue, c.MinOrderValue,
		c.MaxDiscount, c.UsageLimit, c.UsedCount, c.ExpiryDate, c.IsActive,
	)
	if err != nil {
		t.Fatalf("failed to seed coupon %s: %v", c.Code, err)
	}

	return c.ID
}

// SeedFAQ inserts a FAQ and returns its ID. A zero CreatedAt defaults to now;
// ordering tests pass explicit timestamps to pin the tiebreak.
func SeedFAQ(t *testing.T, pool *pgxpool.Pool, f model.FAQ) uuid.UUID {
	t.Helper()

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Category == "" {
		f.Category = model.DefaultFAQCategory
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO faqs (id, question, answer, category, sort_order, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		f.ID, f.Question, f.Answer, f.Category, f.SortOrder, f.IsActive, f.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed FAQ %q: %v", f.Question, err)
	}

	return f.ID
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "coupons", "faqs", "videos", "products", "users"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
