// Package integration provides integration testing utilities for the
// bazaar backend. It uses testcontainers to spin up real PostgreSQL
// databases so the schema constraints are exercised for real.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	mpg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bazaar/backend/internal/infrastructure/config"
	"github.com/bazaar/backend/internal/infrastructure/logger"
	"github.com/bazaar/backend/internal/infrastructure/persistence"
)

// TestDB represents a test database connection
type TestDB struct {
	DB        *gorm.DB
	Database  *persistence.Database
	SqlDB     *sql.DB
	Container testcontainers.Container
	DSN       string
	t         *testing.T
}

// NewTestDB creates a new PostgreSQL container for testing.
// This creates a fresh container for each test, providing complete isolation.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("bazaar_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("admin123"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	host, err := container.Host(ctx)
	require.NoError(t, err, "Failed to get container host")

	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "Failed to get mapped port")

	cfg := &config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "postgres",
		Password:        "admin123",
		DBName:          "bazaar_test",
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5,
		ConnMaxIdleTime: 5,
	}

	database, sqlDB := connectToDatabase(t, cfg)

	runMigrations(t, sqlDB)

	testDB := &TestDB{
		DB:        database.DB,
		Database:  database,
		SqlDB:     sqlDB,
		Container: container,
		DSN:       cfg.DSN(),
		t:         t,
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// Close closes the database connection and terminates the container
func (tdb *TestDB) Close() {
	ctx := context.Background()

	if tdb.Database != nil {
		tdb.Database.Close()
	}

	if tdb.Container != nil {
		if err := tdb.Container.Terminate(ctx); err != nil {
			tdb.t.Logf("Warning: Failed to terminate container: %v", err)
		}
	}
}

// CleanTables truncates all tables in the database
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()

	var tables []string
	err := tdb.DB.Raw(`
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'
		AND tablename != 'schema_migrations'
	`).Scan(&tables).Error
	require.NoError(tdb.t, err, "Failed to get table names")

	for _, table := range tables {
		err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error
		if err != nil {
			tdb.t.Logf("Warning: Failed to truncate table %s: %v", table, err)
		}
	}
}

// connectToDatabase establishes the connection through the same
// Database wrapper and zap-backed GORM logger the application uses
func connectToDatabase(t *testing.T, cfg *config.DatabaseConfig) (*persistence.Database, *sql.DB) {
	t.Helper()

	gormLevel := gormlogger.Silent
	if os.Getenv("TEST_DB_DEBUG") != "" {
		gormLevel = gormlogger.Info
	}

	zapLogger := logger.NewForEnvironment("testing")
	gl := logger.NewGormLogger(zapLogger, gormLevel,
		logger.WithSlowThreshold(time.Second),
	)

	database, err := persistence.NewDatabaseWithLogger(cfg, gl)
	require.NoError(t, err, "Failed to connect to database")

	sqlDB, err := database.DB.DB()
	require.NoError(t, err, "Failed to get underlying SQL DB")

	return database, sqlDB
}

// runMigrations applies all database migrations
func runMigrations(t *testing.T, sqlDB *sql.DB) {
	t.Helper()

	migrationsPath := findMigrationsPath()
	require.NotEmpty(t, migrationsPath, "Could not find migrations directory")

	driver, err := mpg.WithInstance(sqlDB, &mpg.Config{})
	require.NoError(t, err, "Failed to create migration driver")

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"postgres",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to run migrations")
	}
}

// findMigrationsPath locates the migrations directory
func findMigrationsPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}

	dir := filepath.Dir(filename)
	for i := 0; i < 5; i++ {
		migrationsPath := filepath.Join(dir, "migrations")
		if _, err := os.Stat(migrationsPath); err == nil {
			return migrationsPath
		}
		dir = filepath.Dir(dir)
	}

	if wd, err := os.Getwd(); err == nil {
		paths := []string{
			filepath.Join(wd, "migrations"),
			filepath.Join(wd, "..", "migrations"),
			filepath.Join(wd, "..", "..", "migrations"),
		}
		for _, p := range paths {
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}

	return ""
}

// CreateTestRole inserts a role and returns its ID.
func (tdb *TestDB) CreateTestRole(name string) int64 {
	tdb.t.Helper()

	var id int64
	err := tdb.DB.Raw(`
		INSERT INTO roles (name) VALUES (?) RETURNING id
	`, name).Scan(&id).Error
	require.NoError(tdb.t, err, "Failed to create test role")
	return id
}

// CreateTestUser inserts a user under the given role and returns its ID.
func (tdb *TestDB) CreateTestUser(username string, roleID int64) int64 {
	tdb.t.Helper()

	var id int64
	err := tdb.DB.Raw(`
		INSERT INTO users (username, email, email_verified, password, birth_date, role_id)
		VALUES (?, ?, false, '$2a$10$testhash', '1990-01-01', ?)
		RETURNING id
	`, username, username+"@example.com", roleID).Scan(&id).Error
	require.NoError(tdb.t, err, "Failed to create test user")
	return id
}

// CreateTestCategory inserts a product category and returns its ID.
// Pass nil for a root category.
func (tdb *TestDB) CreateTestCategory(name string, parentID *int64) int64 {
	tdb.t.Helper()

	var id int64
	err := tdb.DB.Raw(`
		INSERT INTO product_categories (name, product_category_id)
		VALUES (?, ?) RETURNING id
	`, name, parentID).Scan(&id).Error
	require.NoError(tdb.t, err, "Failed to create test category")
	return id
}

// CreateTestProduct inserts a product under the given category and returns its ID.
func (tdb *TestDB) CreateTestProduct(name, slug string, categoryID int64) int64 {
	tdb.t.Helper()

	var id int64
	err := tdb.DB.Raw(`
		INSERT INTO products (name, slug, description, subcategory_id)
		VALUES (?, ?, '', ?) RETURNING id
	`, name, slug, categoryID).Scan(&id).Error
	require.NoError(tdb.t, err, "Failed to create test product")
	return id
}

// CreateTestVendor inserts a vendor owned by the given user and returns its ID.
func (tdb *TestDB) CreateTestVendor(name string, ownerID int64) int64 {
	tdb.t.Helper()

	var id int64
	err := tdb.DB.Raw(`
		INSERT INTO vendors (name, description, owner_id)
		VALUES (?, 'test vendor', ?) RETURNING id
	`, name, ownerID).Scan(&id).Error
	require.NoError(tdb.t, err, "Failed to create test vendor")
	return id
}
