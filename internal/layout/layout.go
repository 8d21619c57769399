package layout

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed layout.yaml
var layoutYAML []byte

//go:embed templates/*.tmpl
var templateFS embed.FS

// DirectorySpec is one directory of the project tree, relative to the base path.
type DirectorySpec struct {
	Path string // slash-separated, e.g. "src/assets/fonts"
}

// FileSpec is one boilerplate file and the literal content written for it.
type FileSpec struct {
	Path     string // slash-separated, e.g. "src/styles/colors.js"
	Template string // template file the content was read from
	Content  string
}

// Layout is the expanded catalog of a project skeleton.
type Layout struct {
	Name        string
	DisplayName string
	Version     *semver.Version
	Directories []DirectorySpec
	Files       []FileSpec
	NextSteps   []string
}

// document mirrors the layout.yaml format.
type document struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Version     string `yaml:"version"`
	Directories struct {
		Roots  []string `yaml:"roots"`
		Groups []struct {
			Parent   string   `yaml:"parent"`
			Children []string `yaml:"children"`
		} `yaml:"groups"`
	} `yaml:"directories"`
	Files []struct {
		Path     string `yaml:"path"`
		Template string `yaml:"template"`
	} `yaml:"files"`
	NextSteps []string `yaml:"next_steps"`
}

// InvalidError reports schema violations found in a layout document.
type InvalidError struct {
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			msgs = append(msgs, issue.Path+": "+issue.Message)
		} else {
			msgs = append(msgs, issue.Message)
		}
	}
	return "invalid layout: " + strings.Join(msgs, "; ")
}

var (
	loadOnce sync.Once
	loaded   *Layout
	loadErr  error
)

// Load returns the built-in treasure-hunter layout. The embedded document is
// parsed on first use and the same *Layout is returned afterwards.
func Load() (*Layout, error) {
	loadOnce.Do(func() {
		templates, err := fs.Sub(templateFS, "templates")
		if err != nil {
			loadErr = fmt.Errorf("opening embedded templates: %w", err)
			return
		}
		loaded, loadErr = Parse(layoutYAML, templates)
	})
	return loaded, loadErr
}

// Parse validates a layout document and expands it into a Layout. Template
// names are resolved against templates and read verbatim.
func Parse(data []byte, templates fs.FS) (*Layout, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Issues: result.Issues}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	version, err := semver.StrictNewVersion(doc.Version)
	if err != nil {
		return nil, fmt.Errorf("layout version %q: %w", doc.Version, err)
	}

	l := &Layout{
		Name:        doc.Name,
		DisplayName: doc.DisplayName,
		Version:     version,
		NextSteps:   doc.NextSteps,
	}

	seen := make(map[string]string)
	claim := func(p, kind string) error {
		if err := checkPath(p); err != nil {
			return err
		}
		if prev, ok := seen[p]; ok {
			return fmt.Errorf("duplicate %s %q (already declared as %s)", kind, p, prev)
		}
		seen[p] = kind
		return nil
	}

	for _, root := range doc.Directories.Roots {
		if err := claim(root, "directory"); err != nil {
			return nil, err
		}
		l.Directories = append(l.Directories, DirectorySpec{Path: root})
	}
	for _, g := range doc.Directories.Groups {
		for _, child := range g.Children {
			p := path.Join(g.Parent, child)
			if err := claim(p, "directory"); err != nil {
				return nil, err
			}
			l.Directories = append(l.Directories, DirectorySpec{Path: p})
		}
	}

	for _, f := range doc.Files {
		if err := claim(f.Path, "file"); err != nil {
			return nil, err
		}
		content, err := fs.ReadFile(templates, f.Template)
		if err != nil {
			return nil, fmt.Errorf("reading template %s for %s: %w", f.Template, f.Path, err)
		}
		l.Files = append(l.Files, FileSpec{
			Path:     f.Path,
			Template: f.Template,
			Content:  string(content),
		})
	}

	return l, nil
}

// File returns the FileSpec declared for p, if any.
func (l *Layout) File(p string) (FileSpec, bool) {
	for _, f := range l.Files {
		if f.Path == p {
			return f, true
		}
	}
	return FileSpec{}, false
}

// checkPath rejects paths that would escape the base directory.
func checkPath(p string) error {
	if p == "" || path.IsAbs(p) || path.Clean(p) != p {
		return fmt.Errorf("path %q must be relative and clean", p)
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return fmt.Errorf("path %q escapes the base directory", p)
	}
	return nil
}
