package cluster

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/gridctl-dev/gridctl/internal/application/errors"
)

// ResolveShipFiles resolves each requested ship path to an absolute path
// and confirms it exists, in the order supplied. The first missing path
// fails immediately with *apperrors.ShipFileNotFoundError carrying the
// path exactly as supplied; later paths are not checked.
func ResolveShipFiles(paths []string) ([]string, error) {
	resolved := make([]string, 0, len(paths))

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ship file %s: %w", path, err)
		}
		if _, err := os.Stat(abs); err != nil {
			if os.IsNotExist(err) {
				return nil, &apperrors.ShipFileNotFoundError{Path: path}
			}
			return nil, fmt.Errorf("failed to stat ship file %s: %w", path, err)
		}
		resolved = append(resolved, abs)
	}

	return resolved, nil
}
