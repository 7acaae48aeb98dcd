package fsstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivePointer_GetUnset(t *testing.T) {
	pointer := NewActivePointer(filepath.Join(t.TempDir(), "active"))

	active, err := pointer.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "", active)
}

func TestActivePointer_SetThenGet(t *testing.T) {
	pointer := NewActivePointer(filepath.Join(t.TempDir(), "active"))
	ctx := context.Background()

	require.NoError(t, pointer.Set(ctx, "2024-02-01"))

	active, err := pointer.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "2024-02-01", active)

	// A second write is immediately visible.
	require.NoError(t, pointer.Set(ctx, "2024-03-01"))
	active, err = pointer.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-01", active)
}

func TestActivePointer_CreatesParentDir(t *testing.T) {
	pointer := NewActivePointer(filepath.Join(t.TempDir(), "builds", "active"))

	assert.NoError(t, pointer.Set(context.Background(), "2024-01-01"))
	active, err := pointer.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-01", active)
}
