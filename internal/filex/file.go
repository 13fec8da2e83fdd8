// Package filex contains small filesystem helpers shared by components that
// work through an injected afero.Fs.
package filex

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// EnsureParentDir creates the parent directory of path (and any missing
// ancestors) on the given filesystem. It is a no-op when the directory
// already exists.
func EnsureParentDir(fsys afero.Fs, path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return nil
	}
	if err := fsys.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
