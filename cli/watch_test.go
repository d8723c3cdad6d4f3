package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.xml")
	assert.NoError(t, os.WriteFile(path, []byte(flatDocument), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() { changes <- struct{}{} })
	}()

	waitForChange(t, changes)

	// Unrelated files in the same directory are ignored.
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "other.xml"), []byte("x"), 0o600))

	assert.NoError(t, os.WriteFile(path, []byte(hierarchyDocument), 0o600))
	waitForChange(t, changes)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}

func waitForChange(t *testing.T, changes <-chan struct{}) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}
