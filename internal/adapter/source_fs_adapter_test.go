package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "gpifab.dev/pkg/gpifab/internal/model"
)

func writeTestBytes(t *testing.T, path string, content []byte) {
	t.Helper()

	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLocalSourceFSAdapter_ReadSource(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "cyfxgpif2config.h")
	content := []byte("#define CY_NUMBER_OF_STATES 1\n")
	writeTestBytes(t, path, content)

	file, err := adapter.ReadSource(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadSource() error = %v", err)
	}

	if string(file.Content) != string(content) {
		t.Fatalf("ReadSource() content = %q, want %q", file.Content, content)
	}

	if want := fmt.Sprintf("%x", sha256.Sum256(content)); file.Hash != want {
		t.Fatalf("ReadSource() hash = %s, want %s", file.Hash, want)
	}

	if file.Path != m.Path(path) {
		t.Fatalf("ReadSource() path = %s, want %s", file.Path, path)
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := adapter.ReadSource(context.Background(), m.Path(filepath.Join(root, "missing.h"))); err == nil {
			t.Fatalf("ReadSource() expected error for missing file")
		}
	})
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "cyfxgpif2config.h")
	content := []byte("/* Summary\n")
	writeTestBytes(t, path, content)

	hash, err := adapter.HashFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if hash != HashContent(content) {
		t.Fatalf("HashFile() = %s, want %s", hash, HashContent(content))
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "cyfxgpif2config.h")
	writeTestBytes(t, path, []byte("\n"))

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "out.h")

	if err := adapter.WriteFile(context.Background(), m.Path(path), []byte("x"), 0o640); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got := readFileBytes(t, path)
	if string(got) != "x" {
		t.Fatalf("WriteFile() wrote %q", got)
	}
}

func TestLocalSourceFSAdapter_ContextCancellation(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := adapter.WriteFile(ctx, "unused", nil, 0o600); err == nil {
		t.Fatalf("WriteFile() expected error due to context cancellation")
	}
}
