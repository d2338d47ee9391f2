package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cactus.yaml")
	require.NoError(t, Save(path, Default()))

	store := NewStore(Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, path, store, nil))

	edited := Default()
	edited.Body.Ribs = 14
	edited.Arms.Count = 2
	require.NoError(t, Save(path, edited))

	require.Eventually(t, func() bool {
		c, _ := store.Snapshot()
		return c.Body.Ribs == 14 && c.Arms.Count == 2
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cactus.yaml")
	store := NewStore(Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, path, store, nil))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("body: {ribs: 3}\n"), 0644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, uint64(1), store.Revision())
}

func TestWatchReportsBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cactus.yaml")
	store := NewStore(Default())

	var mu sync.Mutex
	var errs []error
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, path, store, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	}))

	require.NoError(t, os.WriteFile(path, []byte("body: [not, a, map\n"), 0644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(errs) > 0
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, uint64(1), store.Revision())
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "cactus.yaml"), NewStore(Default()), nil)
	assert.Error(t, err)
}
