package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, found, err := store.Get(context.Background(), "tasks")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_SetOverwriteDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, "defaultTaskView", "board"))
	require.NoError(t, store.Set(ctx, "defaultTaskView", "list"))

	value, found, err := store.Get(ctx, "defaultTaskView")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "list", value)

	require.NoError(t, store.Delete(ctx, "defaultTaskView"))
	require.NoError(t, store.Delete(ctx, "defaultTaskView"))

	_, found, err = store.Get(ctx, "defaultTaskView")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	store, path := newTestStore(t)
	require.NoError(t, store.Set(ctx, "tasks", `[]`))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)
}
