package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WaitForSnapshot drains snapshots from ch until match returns true or
// the test times out. It returns the matching snapshot payload.
func WaitForSnapshot[T any](t *testing.T, ch <-chan T, match func(T) bool) T {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case snap := <-ch:
			if match(snap) {
				return snap
			}
		case <-deadline:
			t.Fatal("Timed out waiting for snapshot")
			var zero T
			return zero
		}
	}
}
