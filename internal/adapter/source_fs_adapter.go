// Package adapter contains the file system and file format adapters of the
// GPIF descriptor editor.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	m "gpifab.dev/pkg/gpifab/internal/model"
)

// SourceFSAdapter abstracts the file system operations the workflow needs so
// that it can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadSource loads a file and fingerprints its content.
	ReadSource(ctx context.Context, path m.Path) (m.File, error)

	// HashFile returns the SHA-256 of the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadSource loads file contents from disk together with their SHA-256.
func (a *LocalSourceFSAdapter) ReadSource(ctx context.Context, path m.Path) (m.File, error) {
	if err := ctx.Err(); err != nil {
		return m.File{}, err
	}

	// #nosec G304 - the path is the configuration file chosen by the user
	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.File{}, err
	}

	return m.File{
		Path:    path,
		Hash:    HashContent(content),
		Content: content,
	}, nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// #nosec G304 - the path is the configuration file chosen by the user
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// HashContent returns the hex encoded SHA-256 of content.
func HashContent(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}
