package sqlitekv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/kv"
)

var _ kv.Store = (*Store)(nil)

func TestGetSet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todolist.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "quotes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "quotes", "[]"))
	require.NoError(t, s.Set(ctx, "quotes", `[{"id":"id-0","content":"a"}]`))
	require.NoError(t, s.Set(ctx, "other", ""))

	v, ok, err := s.Get(ctx, "quotes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"id-0","content":"a"}]`, v)

	v, ok, err = s.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", v)
	require.NoError(t, s.Close())

	// Values survive reopening the file.
	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	v, _, err = s.Get(ctx, "quotes")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"id-0","content":"a"}]`, v)
}
