package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "batch.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}
	return path
}

func TestReadBatchFile(t *testing.T) {
	path := writeBatchFile(t, "main.py\nlib/util.js\n")

	paths, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	expected := []string{"main.py", "lib/util.js"}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("ReadBatchFile = %v, want %v", paths, expected)
	}
}

func TestReadBatchFileSkipsCommentsAndBlanks(t *testing.T) {
	path := writeBatchFile(t, "# converted sources\n\nmain.py\n   \n# another comment\nscript.rb\n")

	paths, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	expected := []string{"main.py", "script.rb"}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("ReadBatchFile = %v, want %v", paths, expected)
	}
}

func TestReadBatchFileCRLF(t *testing.T) {
	path := writeBatchFile(t, "main.py\r\nscript.rb\r\n")

	paths, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	expected := []string{"main.py", "script.rb"}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("ReadBatchFile = %v, want %v", paths, expected)
	}
}

func TestReadBatchFileEmpty(t *testing.T) {
	path := writeBatchFile(t, "\n# only comments\n")

	if _, err := ReadBatchFile(path); err == nil {
		t.Error("Expected error for batch file without paths")
	}
}

func TestReadBatchFileMissing(t *testing.T) {
	if _, err := ReadBatchFile("/nonexistent/batch.txt"); err == nil {
		t.Error("Expected error for missing batch file")
	}
}
