package credstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_GetAbsentSlotReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	value, err := repo.Get(context.Background(), SlotToken)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestSQLiteRepository_SetAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, SlotToken, []byte("tok123")))

	value, err := repo.Get(ctx, SlotToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok123"), value)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, SlotToken, []byte("old")))
	require.NoError(t, repo.Set(ctx, SlotToken, []byte("new")))

	value, err := repo.Get(ctx, SlotToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, SlotToken, []byte("tok123")))
	require.NoError(t, repo.Delete(ctx, SlotToken))

	value, err := repo.Get(ctx, SlotToken)
	require.NoError(t, err)
	assert.Nil(t, value)

	// Deleting an absent slot is not an error.
	require.NoError(t, repo.Delete(ctx, SlotToken))
}

func TestSQLiteRepository_SetAllWritesBothSlots(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.SetAll(ctx, map[string][]byte{
		SlotToken:    []byte("tok123"),
		SlotIdentity: []byte(`{"_id":"a1","name":"Admin"}`),
	})
	require.NoError(t, err)

	token, err := repo.Get(ctx, SlotToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok123"), token)

	identity, err := repo.Get(ctx, SlotIdentity)
	require.NoError(t, err)
	assert.NotEmpty(t, identity)
}

func TestSQLiteRepository_ClearRemovesEverything(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetAll(ctx, map[string][]byte{
		SlotToken:    []byte("tok123"),
		SlotIdentity: []byte("{}"),
	}))
	require.NoError(t, repo.Clear(ctx))

	token, err := repo.Get(ctx, SlotToken)
	require.NoError(t, err)
	assert.Nil(t, token)

	identity, err := repo.Get(ctx, SlotIdentity)
	require.NoError(t, err)
	assert.Nil(t, identity)

	// Idempotent.
	require.NoError(t, repo.Clear(ctx))
}
