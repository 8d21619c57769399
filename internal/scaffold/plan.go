package scaffold

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/bernardogv/treasure-hunter/internal/layout"
)

// Op is the decision taken for one target path.
type Op int

const (
	OpSkip Op = iota
	OpMkdir
	OpWrite
)

func (o Op) String() string {
	switch o {
	case OpMkdir:
		return "mkdir"
	case OpWrite:
		return "write"
	default:
		return "skip"
	}
}

// Action is one planned step of a run.
type Action struct {
	Op      Op
	Dir     bool   // target is a directory
	Path    string // absolute path on the target filesystem
	Content string // file content; empty for directories
}

// Plan decides, from the current filesystem state alone, which layout paths
// under base must be created. Nothing is written. Directories come first, in
// layout order, followed by files. Any existing entry at a target is skipped,
// whatever its type.
func (s *Scaffolder) Plan(base string, l *layout.Layout) []Action {
	actions := make([]Action, 0, len(l.Directories)+len(l.Files))

	for _, d := range l.Directories {
		p := target(base, d.Path)
		op := OpMkdir
		if s.exists(p) {
			op = OpSkip
		}
		actions = append(actions, Action{Op: op, Dir: true, Path: p})
	}

	for _, f := range l.Files {
		p := target(base, f.Path)
		op := OpWrite
		if s.exists(p) {
			op = OpSkip
		}
		actions = append(actions, Action{Op: op, Path: p, Content: f.Content})
	}

	return actions
}

// PrintPlan writes a dry-run listing of the paths a run would create.
func PrintPlan(w io.Writer, actions []Action) {
	var dirs, files int
	for _, a := range actions {
		switch a.Op {
		case OpMkdir:
			dirs++
			fmt.Fprintf(w, "Would create directory: %s\n", a.Path)
		case OpWrite:
			files++
			fmt.Fprintf(w, "Would create file: %s\n", a.Path)
		}
	}
	if dirs+files == 0 {
		fmt.Fprintln(w, "Nothing to create; every path already exists.")
		return
	}
	fmt.Fprintf(w, "\n%d directories and %d files would be created.\n", dirs, files)
}

// exists reports whether anything is at path. A stat failure other than "not
// exist" also counts as absent; Apply then reports it when creating the path.
func (s *Scaffolder) exists(path string) bool {
	_, err := s.fs.Stat(path)
	return err == nil
}

func target(base, rel string) string {
	return filepath.Join(base, filepath.FromSlash(rel))
}
