package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "store.json")
		content := []byte(`{"h1":{}}`)

		if err := writeFileAtomic(filename, content, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected content %q, got %q", content, got)
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "store.json")

		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		newContent := []byte("overwritten")
		if err := writeFileAtomic(filename, newContent, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(newContent) {
			t.Errorf("Expected content 'overwritten', got '%s'", string(got))
		}
	})

	t.Run("Leaves No Temp Files Behind", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "store.json")

		if err := writeFileAtomic(filename, []byte("data"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "missing_folder", "store.json")

		err := writeFileAtomic(filename, []byte("fail"), 0644)
		if err == nil {
			t.Error("Expected error when directory is missing, got nil")
		}
	})
}
