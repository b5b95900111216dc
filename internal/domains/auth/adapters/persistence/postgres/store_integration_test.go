//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/domain"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/ports"
	"github.com/Mr-dragon5/invoice-dashboard/internal/platform/migrations"
)

func setupAuthPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("dashboard_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestUserRepository_SaveUpsertsByEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupAuthPostgresContainer(t)
	defer cleanup()

	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := domain.NewUser("", "user@example.com", "123456")
	require.NoError(t, err)
	user.Name = "User"

	saved, err := repo.Save(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "user@example.com", saved.Email)

	saved.Name = "Renamed"
	require.NoError(t, saved.SetPassword("secret7"))
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.CheckPassword("secret7"))

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSessionStore_SaveDeletePurge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupAuthPostgresContainer(t)
	defer cleanup()

	ctx := context.Background()
	store := NewSessionStore(db, time.Hour)

	require.NoError(t, store.Save(ctx, "user@example.com", "token-1"))
	require.NoError(t, store.Save(ctx, "user@example.com", "token-1"))
	require.NoError(t, store.Delete(ctx, "user@example.com"))

	var count int64
	require.NoError(t, db.Table("user_sessions").Count(&count).Error)
	assert.Zero(t, count)

	// A nanosecond TTL expires before the purge runs.
	expired := NewSessionStore(db, time.Nanosecond)
	require.NoError(t, expired.Save(ctx, "old@example.com", "token-2"))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, store.PurgeExpired(ctx))
	require.NoError(t, db.Table("user_sessions").Count(&count).Error)
	assert.Zero(t, count)
}
