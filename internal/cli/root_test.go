package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// execute runs the command tree with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)
	viper.Reset()
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute("1.2.3", "abc1234", "2026-10-19")
	return out.String(), err
}

// resetFlags restores every flag in the tree to its default, unchanged state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestRoot_ScaffoldsDir(t *testing.T) {
	base := t.TempDir()

	out, err := execute(t, "--dir", base)
	if err != nil {
		t.Fatalf("execute error: %v\n%s", err, out)
	}

	for _, p := range []string{"src/assets/fonts", "backend/routes", "tests/e2e", "scripts"} {
		info, err := os.Stat(filepath.Join(base, p))
		if err != nil || !info.IsDir() {
			t.Errorf("%s should be a directory (err=%v)", p, err)
		}
	}
	if !strings.Contains(out, "Created file: "+filepath.Join(base, "package.json")+"\n") {
		t.Errorf("missing package.json creation notice:\n%s", out)
	}
	if !strings.Contains(out, "Project location: "+base+"\n") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestRoot_DefaultsToWorkingDirectory(t *testing.T) {
	base := t.TempDir()
	// t.Chdir requires Go 1.24; equivalent chdir with restore.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(base); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PWD", base)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute error: %v\n%s", err, out)
	}

	if _, err := os.Stat(filepath.Join(base, "App.js")); err != nil {
		t.Errorf("App.js not created in working directory: %v", err)
	}
}

func TestRoot_SecondRunPrintsOnlySummary(t *testing.T) {
	base := t.TempDir()

	if _, err := execute(t, "--dir", base); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	out, err := execute(t, "--dir", base)
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}

	if strings.Contains(out, "Created directory") || strings.Contains(out, "Created file") {
		t.Errorf("second run printed creation notices:\n%s", out)
	}
	if !strings.HasPrefix(out, "\nTreasure Hunter App folder structure has been created successfully!\n") {
		t.Errorf("second run output should start with the summary:\n%s", out)
	}
}

func TestRoot_VerboseReportsSkips(t *testing.T) {
	base := t.TempDir()
	if _, err := execute(t, "--dir", base); err != nil {
		t.Fatalf("first run error: %v", err)
	}

	out, err := execute(t, "--dir", base, "--verbose")
	if err != nil {
		t.Fatalf("verbose run error: %v", err)
	}
	if !strings.Contains(out, "  [SKIP] "+filepath.Join(base, "README.md")+" already exists\n") {
		t.Errorf("expected skip line for README.md:\n%s", out)
	}
}

func TestRoot_DryRunWritesNothing(t *testing.T) {
	base := t.TempDir()

	out, err := execute(t, "--dir", base, "--dry-run")
	if err != nil {
		t.Fatalf("dry run error: %v", err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run created %d entries", len(entries))
	}
	if !strings.Contains(out, "Would create directory: "+filepath.Join(base, ".vscode")+"\n") {
		t.Errorf("missing planned directory:\n%s", out)
	}
	if !strings.Contains(out, "49 directories and 18 files would be created.") {
		t.Errorf("missing plan totals:\n%s", out)
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	if _, err := execute(t, "somewhere"); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestRoot_FileAtDirectoryPath(t *testing.T) {
	t.Run("childless root is skipped", func(t *testing.T) {
		base := t.TempDir()
		if err := os.WriteFile(filepath.Join(base, "scripts"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}

		out, err := execute(t, "--dir", base)
		if err != nil {
			t.Fatalf("execute error: %v\n%s", err, out)
		}
		if strings.Contains(out, "Created directory: "+filepath.Join(base, "scripts")+"\n") {
			t.Error("scripts reported as created")
		}
		if !strings.Contains(out, "created successfully!") {
			t.Errorf("summary missing:\n%s", out)
		}
	})

	t.Run("parent of later paths fails", func(t *testing.T) {
		base := t.TempDir()
		if err := os.WriteFile(filepath.Join(base, "docs"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}

		out, err := execute(t, "--dir", base)
		if err == nil {
			t.Fatal("expected error when docs is a file")
		}
		if !strings.Contains(err.Error(), filepath.Join(base, "docs", "api")) {
			t.Errorf("error = %v", err)
		}
		if !strings.Contains(out, "Created directory: "+filepath.Join(base, "backend")) {
			t.Errorf("directories before docs/api were not created:\n%s", out)
		}
		if strings.Contains(out, "successfully") {
			t.Error("summary printed after a failed run")
		}
	})
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.HasPrefix(out, "treasure-hunter 0.1.0: 49 directories, 18 files\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	for _, want := range []string{"KIND", "src/assets/animations/", "src/components/discovery/SwipeCard.js"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "list", "--json")
	if err != nil {
		t.Fatalf("list --json error: %v", err)
	}

	var got listOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Name != "treasure-hunter" || got.Version != "0.1.0" {
		t.Errorf("name/version = %s/%s", got.Name, got.Version)
	}
	if len(got.Directories) != 49 || len(got.Files) != 18 {
		t.Errorf("got %d directories and %d files", len(got.Directories), len(got.Files))
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"plain", []string{"version"}, []string{"th-setup version 1.2.3 (commit: abc1234, built: 2026-10-19)", "layout treasure-hunter 0.1.0"}},
		{"short", []string{"version", "--short"}, []string{"1.2.3\n"}},
		{"json", []string{"version", "--json"}, []string{`"layout_version": "0.1.0"`, `"commit": "abc1234"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
		})
	}
}

func TestConfigSetGet(t *testing.T) {
	home := t.TempDir()

	run := func(args ...string) string {
		t.Helper()
		resetFlags(rootCmd)
		viper.Reset()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(args)
		if err := Execute("1.2.3", "abc1234", "2026-10-19"); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}
	t.Setenv("HOME", home)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if out := run("config", "set", "base_dir", "/tmp/treasure"); out != "Set base_dir = /tmp/treasure\n" {
		t.Errorf("config set output = %q", out)
	}
	if out := run("config", "get", "base_dir"); out != "/tmp/treasure\n" {
		t.Errorf("config get output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(home, ".th-setup", "config.yaml")); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestConfigHelp(t *testing.T) {
	out, err := execute(t, "config", "--help")
	if err != nil {
		t.Fatalf("config --help error: %v", err)
	}
	for _, want := range []string{
		filepath.Join(".th-setup", "config.yaml"),
		"THSETUP_<KEY>",
		"base_dir, verbose",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
}

func TestConfigSetUnknownKey(t *testing.T) {
	_, err := execute(t, "config", "set", "overwrite", "true")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}
