package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/remvana/nestmap/internal/repository"
)

func TestAPIKeyRepository_ResolveTenant(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAPIKeyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "secret-token", "tenant1", "test key"))

	tenantID, err := repo.ResolveTenant(ctx, "secret-token")
	require.NoError(t, err)
	require.Equal(t, "tenant1", tenantID)
}

func TestAPIKeyRepository_ResolveTenant_Unknown(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAPIKeyRepository(db)

	_, err := repo.ResolveTenant(context.Background(), "never-registered")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAPIKeyRepository_StoresHashNotPlaintext(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAPIKeyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "secret-token", "tenant1", "test key"))

	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM api_keys WHERE key_hash = ?`, "secret-token").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count, "plaintext token must not be stored")

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM api_keys WHERE key_hash = ?`, HashToken("secret-token")).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestAPIKeyRepository_ResolveUpdatesLastUsed(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAPIKeyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "secret-token", "tenant1", "test key"))

	var lastUsed any
	err := db.QueryRowContext(ctx,
		`SELECT last_used FROM api_keys WHERE key_hash = ?`, HashToken("secret-token")).Scan(&lastUsed)
	require.NoError(t, err)
	require.Nil(t, lastUsed)

	_, err = repo.ResolveTenant(ctx, "secret-token")
	require.NoError(t, err)

	err = db.QueryRowContext(ctx,
		`SELECT last_used FROM api_keys WHERE key_hash = ?`, HashToken("secret-token")).Scan(&lastUsed)
	require.NoError(t, err)
	require.NotNil(t, lastUsed)
}
