// Package adapter contains the infrastructure adapters of the bytebeat CLI:
// source files, plot output and audio devices.
package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	m "github.com/mouse-blink/bytebeat/internal/model"
)

// StdinPath selects standard input as the source.
const StdinPath m.Path = "-"

// SourceFSAdapter abstracts the filesystem access the domain layer needs to
// load and follow expression sources.
type SourceFSAdapter interface {
	// Read loads the source at path. StdinPath reads standard input.
	Read(path m.Path) (m.Source, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Watch polls path every interval and calls onChange whenever its
	// content changed. It returns nil once ctx is done.
	Watch(ctx context.Context, path m.Path, interval time.Duration, onChange func(m.Source)) error
}

// LocalSourceFSAdapter is the os backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	stdin io.Reader
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter reading
// StdinPath from os.Stdin.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{stdin: os.Stdin}
}

// Read loads a source file.
func (a *LocalSourceFSAdapter) Read(path m.Path) (m.Source, error) {
	var (
		content []byte
		err     error
	)

	if path == StdinPath {
		content, err = io.ReadAll(a.stdin)
	} else {
		content, err = os.ReadFile(string(path))
	}

	if err != nil {
		return m.Source{}, fmt.Errorf("read source %s: %w", path, err)
	}

	return m.Source{
		Origin: path,
		Hash:   hashBytes(content),
		Text:   string(content),
	}, nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
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

	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileInfo returns metadata for path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Watch polls the modification time and size of path. A changed stat is
// confirmed by the content hash before onChange is called, so touching the
// file without editing it is ignored. Transient read errors, such as an
// editor replacing the file, are retried on the next poll.
func (a *LocalSourceFSAdapter) Watch(ctx context.Context, path m.Path, interval time.Duration, onChange func(m.Source)) error {
	info, err := a.FileInfo(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	lastMod, lastSize := info.ModTime(), info.Size()

	lastHash, err := a.HashFile(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		info, err := a.FileInfo(path)
		if err != nil || (info.ModTime().Equal(lastMod) && info.Size() == lastSize) {
			continue
		}

		source, err := a.Read(path)
		if err != nil {
			continue
		}

		lastMod, lastSize = info.ModTime(), info.Size()

		if source.Hash == lastHash {
			continue
		}

		lastHash = source.Hash
		onChange(source)
	}
}

func hashBytes(content []byte) string {
	sum := sha256.Sum256(content)

	return hex.EncodeToString(sum[:])
}
