// Package storagetest поднимает схему в тестовой PostgreSQL для тестов репозиториев
package storagetest

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/mdemidkin1992/shareit/internal/domain"
	"github.com/mdemidkin1992/shareit/pkg/dbmetrics"
	"github.com/mdemidkin1992/shareit/pkg/types"
)

// DSNEnv переменная окружения со строкой подключения к тестовой БД
const DSNEnv = "SHAREIT_TEST_DSN"

// Open подключается к тестовой БД, применяет миграции и очищает таблицы.
// Без SHAREIT_TEST_DSN тест пропускается
func Open(t *testing.T) *dbmetrics.DB {
	t.Helper()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", DSNEnv)
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, db.PingContext(ctx))

	schema, err := os.ReadFile(migrationPath())
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, string(schema))
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "TRUNCATE comments, bookings, items, item_requests, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return dbmetrics.Wrap(db, nil)
}

// MustUser создает пользователя напрямую через SQL
func MustUser(t *testing.T, db dbmetrics.DBExecutor, name, email string) domain.User {
	t.Helper()

	u := domain.User{Name: name, Email: email}
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id", name, email).Scan(&u.ID)
	require.NoError(t, err)
	return u
}

// MustItem создает вещь напрямую через SQL
func MustItem(t *testing.T, db dbmetrics.DBExecutor, ownerID int64, name string, available bool) domain.Item {
	t.Helper()

	it := domain.Item{Name: name, Description: name + " description", Available: available, OwnerID: ownerID}
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO items (name, description, available, owner_id) VALUES ($1, $2, $3, $4) RETURNING id",
		it.Name, it.Description, it.Available, it.OwnerID).Scan(&it.ID)
	require.NoError(t, err)
	return it
}

// MustRequest создает запрос на вещь напрямую через SQL
func MustRequest(t *testing.T, db dbmetrics.DBExecutor, requesterID int64, description string, created time.Time) domain.ItemRequest {
	t.Helper()

	req := domain.ItemRequest{Description: description, RequesterID: requesterID, Created: created}
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO item_requests (description, requester_id, created) VALUES ($1, $2, $3) RETURNING id",
		description, requesterID, types.ToDB(created)).Scan(&req.ID)
	require.NoError(t, err)
	return req
}

func migrationPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations", "001_init.sql")
}
