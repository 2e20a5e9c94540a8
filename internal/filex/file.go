// Package filex holds filesystem helpers used by the CLI: the local state
// directory and opening files for upload.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSubdDir creates dirName (relative to the working directory unless
// absolute) with 0700 permissions and returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// OpenFiles opens every path for reading. On failure the files opened so far
// are closed. The returned closer closes all of them.
func OpenFiles(paths []string) ([]*os.File, func() error, error) {
	files := make([]*os.File, 0, len(paths))
	closeAll := func() error {
		var errs []error
		for _, f := range files {
			errs = append(errs, f.Close())
		}
		return errors.Join(errs...)
	}

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			_ = closeAll()
			return nil, nil, fmt.Errorf("open %s: %w", p, err)
		}
		st, err := f.Stat()
		if err == nil && st.IsDir() {
			_ = f.Close()
			_ = closeAll()
			return nil, nil, fmt.Errorf("open %s: is a directory", p)
		}
		files = append(files, f)
	}
	return files, closeAll, nil
}
