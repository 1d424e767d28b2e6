package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/countries-explorer/internal/client/storage"
)

// newTestStorage создает storage во временной директории
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestStorage_SetGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "users", []byte(`[{"username":"alice"}]`)))

	value, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"username":"alice"}]`), value)
}

func TestStorage_Get_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStorage_Set_Overwrite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "key", []byte("first")))
	require.NoError(t, s.Set(ctx, "key", []byte("second")))

	value, err := s.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), value)
}

func TestStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "key", []byte("value")))
	require.NoError(t, s.Delete(ctx, "key"))

	_, err := s.Get(ctx, "key")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Повторное удаление не является ошибкой
	assert.NoError(t, s.Delete(ctx, "key"))
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "favorites_alice", []byte(`["DEU"]`)))
	require.NoError(t, s.Close())

	// Открываем заново и проверяем, что данные на месте
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s.Close())
	}()

	value, err := s.Get(ctx, "favorites_alice")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["DEU"]`), value)
}
