package fs

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/birdtab"
)

// ReadDocument reads an input document.
// Returns ENOTFOUND if path does not exist and EINVALID if it is a directory.
func ReadDocument(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, birdtab.Errorf(birdtab.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if info.IsDir() {
		return nil, birdtab.Errorf(birdtab.EINVALID, "input is a directory: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
