package database

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystore/skystore/internal/domain"
	"github.com/skystore/skystore/internal/infrastructure/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(sqlite.Open(":memory:"), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestUser(t *testing.T, login string) domain.User {
	t.Helper()
	user, err := domain.NewUser(login, "hashed-secret")
	require.NoError(t, err)
	return user
}

func TestUsersSaveAndLookup(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	users := store.Users()

	user := newTestUser(t, "alice")
	require.NoError(t, users.Save(ctx, &user))

	byID, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, user.Login, byID.Login)
	assert.Equal(t, user.HashedPassword, byID.HashedPassword)

	byLogin, err := users.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byLogin)
	assert.Equal(t, user.ID, byLogin.ID)
}

func TestUsersAbsentLookupsReturnNil(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	byID, err := users.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, byID)

	byLogin, err := users.GetByLogin(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, byLogin)
}

func TestUsersDuplicateLoginRejected(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	first := newTestUser(t, "alice")
	require.NoError(t, users.Save(ctx, &first))

	second := newTestUser(t, "alice")
	assert.Error(t, users.Save(ctx, &second))
}

func TestTxCommitAndRollback(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("commit persists", func(t *testing.T) {
		tx, err := store.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback()

		user := newTestUser(t, "committed")
		require.NoError(t, tx.Users().Save(ctx, &user))
		require.NoError(t, tx.Commit(ctx))

		saved, err := store.Users().GetByLogin(ctx, "committed")
		require.NoError(t, err)
		assert.NotNil(t, saved)
	})

	t.Run("rollback discards", func(t *testing.T) {
		tx, err := store.Begin(ctx)
		require.NoError(t, err)

		user := newTestUser(t, "discarded")
		require.NoError(t, tx.Users().Save(ctx, &user))
		tx.Rollback()

		saved, err := store.Users().GetByLogin(ctx, "discarded")
		require.NoError(t, err)
		assert.Nil(t, saved)
	})

	t.Run("rollback after commit is a no-op", func(t *testing.T) {
		tx, err := store.Begin(ctx)
		require.NoError(t, err)

		user := newTestUser(t, "kept")
		require.NoError(t, tx.Users().Save(ctx, &user))
		require.NoError(t, tx.Commit(ctx))
		tx.Rollback()

		saved, err := store.Users().GetByLogin(ctx, "kept")
		require.NoError(t, err)
		assert.NotNil(t, saved)
	})
}
