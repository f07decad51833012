// Package fs provides file-based input and output for birdtab.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/birdtab"
)

// Ensure FileStore implements birdtab.TableStore at compile time.
var _ birdtab.TableStore = (*FileStore)(nil)

// FileStore implements birdtab.TableStore with atomic update semantics.
// The table is saved to path.tmp, then renamed onto path on Commit, so a
// run leaves either a complete table or no change at all.
type FileStore struct {
	path    string
	encoder birdtab.TableEncoder
	digest  uint64
}

// NewFileStore creates a new FileStore writing to path with encoder.
func NewFileStore(path string, encoder birdtab.TableEncoder) *FileStore {
	return &FileStore{
		path:    path,
		encoder: encoder,
	}
}

// Path returns the final output path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) tempPath() string {
	return s.path + ".tmp"
}

// Save encodes records into the temporary file and records their digest.
func (s *FileStore) Save(ctx context.Context, records []*birdtab.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(s.tempPath())
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	h := xxhash.New()
	if err := s.encoder.Encode(io.MultiWriter(f, h), records); err != nil {
		f.Close()
		os.Remove(s.tempPath())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(s.tempPath())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	s.digest = h.Sum64()
	return nil
}

// Commit atomically replaces the output file with the saved table.
func (s *FileStore) Commit() error {
	if err := os.Rename(s.tempPath(), s.path); err != nil {
		return fmt.Errorf("failed to commit table: %w", err)
	}
	return nil
}

// Abort removes the temporary file. Aborting without a prior Save is a no-op.
func (s *FileStore) Abort() error {
	if err := os.Remove(s.tempPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Digest returns the xxhash64 of the bytes written by the last Save.
func (s *FileStore) Digest() uint64 {
	return s.digest
}
