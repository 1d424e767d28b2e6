package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/countries-explorer/internal/client/storage"
)

func TestStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer func() {
		require.NoError(t, store.Close())
	}()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "key", []byte("value")))

	got, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	// Перезапись заменяет значение
	require.NoError(t, store.Set(ctx, "key", []byte("other")))
	got, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("other"), got)

	require.NoError(t, store.Delete(ctx, "key"))
	_, err = store.Get(ctx, "key")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Удаление отсутствующего ключа не ошибка
	require.NoError(t, store.Delete(ctx, "key"))
}

func TestStorage_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Set(ctx, "key", []byte("value")))

	got, err := store.Get(ctx, "key")
	require.NoError(t, err)
	got[0] = 'X'

	// Мутация результата не трогает хранимое значение
	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}

func TestStorage_Helpers(t *testing.T) {
	ctx := context.Background()
	store := New()

	assert.Equal(t, 0, store.Len())
	assert.False(t, store.Has("key"))

	require.NoError(t, store.Set(ctx, "key", []byte("value")))

	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Has("key"))
}
