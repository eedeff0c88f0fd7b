// Package testinternals holds helpers shared by the postgres backed integration tests.
package testinternals

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/phuong-practice-projects/healthy-system/internal/db"
)

const testDBName = "healthy_test"

// NewDBPool connects to the test database named by POSTGRES_HOST / POSTGRES_PORT
// and applies the schema.
func NewDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	t.Logf("using postgres host: %s:%s", host, port)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         port,
		DBName:         testDBName,
		DBPassword:     os.Getenv("POSTGRES_PASSWORD"),
		TracingEnabled: false,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(timeoutCtx, dbPool))

	t.Cleanup(dbPool.Close)
	return dbPool
}

// AddUser inserts a throwaway user so records can reference it.
func AddUser(t *testing.T, dbPool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := dbPool.Exec(
		context.Background(),
		`INSERT INTO app_user (id, email, display_name, password_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5);`,
		id, gofakeit.Email(), gofakeit.Name(), "not-a-real-hash", now,
	)
	require.NoError(t, err)
	return id
}
