package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBolt(t *testing.T) *Bolt {
	t.Helper()
	b, err := NewBolt(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestBoltSetGetRemove(t *testing.T) {
	b := newTestBolt(t)

	_, ok := b.Get("missing")
	assert.False(t, ok)

	b.Set("greeting", "hello")
	v, ok := b.Get("greeting")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	b.Remove("greeting")
	_, ok = b.Get("greeting")
	assert.False(t, ok)
}

func TestBoltSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	b, err := NewBolt(path)
	require.NoError(t, err)
	b.Set("persisted", "yes")
	require.NoError(t, b.Close())

	reopened, err := NewBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok := reopened.Get("persisted")
	assert.True(t, ok)
	assert.Equal(t, "yes", v)
}
