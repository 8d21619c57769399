package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Permission constants for created paths.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// EnsureDir creates path and any missing parents. It reports whether the
// directory was created. Anything already at path, directory or not, is left
// alone; a later path that needs it as a parent fails in the filesystem.
func (s *Scaffolder) EnsureDir(path string) (bool, error) {
	_, err := s.fs.Stat(path)
	if err == nil {
		s.skipped(path)
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking directory %s: %w", path, err)
	}

	if err := s.fs.MkdirAll(path, DirPerm); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(s.w, "Created directory: %s\n", path)
	return true, nil
}

// EnsureFile writes content to path unless something already exists there.
// Missing parent directories are created without a progress line.
func (s *Scaffolder) EnsureFile(path, content string) (bool, error) {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, DirPerm); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if _, err := s.fs.Stat(path); err == nil {
		s.skipped(path)
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking file %s: %w", path, err)
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			s.skipped(path)
			return false, nil
		}
		return false, fmt.Errorf("creating file %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return false, fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing file %s: %w", path, err)
	}

	fmt.Fprintf(s.w, "Created file: %s\n", path)
	return true, nil
}

func (s *Scaffolder) skipped(path string) {
	if s.Verbose {
		fmt.Fprintf(s.w, "  [SKIP] %s already exists\n", path)
	}
}
