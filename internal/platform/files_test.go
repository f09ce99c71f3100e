package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists returned error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path is not a directory")
	}

	// Calling again on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Second call returned error: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("GetHomeDownloadsDir returned error: %v", err)
	}
	if dir == "" {
		t.Fatal("Expected non-empty downloads directory")
	}
	if filepath.Base(dir) != "Downloads" {
		t.Errorf("Expected path ending in Downloads, got %s", dir)
	}
}

func TestOpenFileInManager_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.jpg")
	if err := OpenFileInManager(missing); err == nil {
		t.Error("Expected error for missing file")
	}
}
