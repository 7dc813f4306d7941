package seed

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pharmacie-tassigny/site/backend/internal/content"
)

// ErrSourceNotFound means the authoring directory does not exist.
var ErrSourceNotFound = errors.New("content source directory not found")

type Result struct {
	Copied  []string
	Skipped []string
}

// SeedContent copies every content document from src into dst, creating dst
// when needed. Documents absent from src are skipped, not treated as errors.
func SeedContent(src, dst string) (*Result, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, src)
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dst, err)
	}

	result := &Result{}
	for _, name := range content.Files {
		err := copyFile(filepath.Join(src, name), filepath.Join(dst, name))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Warn("content file missing from source", "file", name, "source", src)
			result.Skipped = append(result.Skipped, name)
		case err != nil:
			return result, fmt.Errorf("copy %s: %w", name, err)
		default:
			slog.Info("content file copied", "file", name)
			result.Copied = append(result.Copied, name)
		}
	}

	return result, nil
}

// copyFile writes through a temporary file so readers never see a partial document.
func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(to), ".sync-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), to)
}
