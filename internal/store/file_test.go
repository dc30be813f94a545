package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_ReadMissing(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	v, ok, err := f.Read(context.Background(), KeyOrders)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFile_WriteRead(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, f.Write(ctx, KeyOrders, `[{"id":"ORD-20230815-001"}]`))

	v, ok, err := f.Read(ctx, KeyOrders)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"ORD-20230815-001"}]`, v)
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	f1, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f1.Write(ctx, KeySubscription, `{"plan_id":"BASIC"}`))

	f2, err := NewFile(dir)
	require.NoError(t, err)
	v, ok, err := f2.Read(ctx, KeySubscription)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"plan_id":"BASIC"}`, v)
}

func TestFile_WriteReplacesWholesale(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, f.Write(ctx, KeyOrders, "first"))
	require.NoError(t, f.Write(ctx, KeyOrders, "second"))

	v, _, err := f.Read(ctx, KeyOrders)
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}
