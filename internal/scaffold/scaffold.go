package scaffold

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/bernardogv/treasure-hunter/internal/layout"
	"github.com/spf13/afero"
)

// Scaffolder creates layout paths on a filesystem and reports progress to w.
type Scaffolder struct {
	// Verbose also prints a line for every path that already existed.
	Verbose bool

	fs afero.Fs
	w  io.Writer
}

// Result holds the outcome of an applied plan.
type Result struct {
	Base    string
	Created []string
	Skipped []string
}

// New returns a Scaffolder working on fsys.
func New(fsys afero.Fs, w io.Writer) *Scaffolder {
	return &Scaffolder{fs: fsys, w: w}
}

// Apply performs actions in order. Every action goes through EnsureDir or
// EnsureFile, so a path that appeared since planning is still skipped. The
// first error stops the run; paths created before it are left in place.
func (s *Scaffolder) Apply(actions []Action) (*Result, error) {
	result := &Result{}
	for _, a := range actions {
		var (
			created bool
			err     error
		)
		if a.Dir {
			created, err = s.EnsureDir(a.Path)
		} else {
			created, err = s.EnsureFile(a.Path, a.Content)
		}
		if err != nil {
			return result, err
		}
		if created {
			result.Created = append(result.Created, a.Path)
		} else {
			result.Skipped = append(result.Skipped, a.Path)
		}
	}
	return result, nil
}

// Run scaffolds l under base and prints the completion summary.
func (s *Scaffolder) Run(base string, l *layout.Layout) (*Result, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving base path %s: %w", base, err)
	}

	result, err := s.Apply(s.Plan(abs, l))
	result.Base = abs
	if err != nil {
		return result, err
	}

	s.printSummary(abs, l)
	return result, nil
}

func (s *Scaffolder) printSummary(base string, l *layout.Layout) {
	fmt.Fprintf(s.w, "\n%s folder structure has been created successfully!\n", l.DisplayName)
	fmt.Fprintf(s.w, "Project location: %s\n", base)
	if len(l.NextSteps) == 0 {
		return
	}
	fmt.Fprintln(s.w, "\nNext steps:")
	for i, step := range l.NextSteps {
		fmt.Fprintf(s.w, "%d. %s\n", i+1, step)
	}
}
