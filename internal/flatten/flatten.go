package flatten

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/stackhooks/internal/answers"
	"github.com/agentx-labs/stackhooks/internal/platform"
)

// Target names a source directory holding one subdirectory per stack and
// the answer key that selects which stacks to merge.
type Target struct {
	Name      string // CLI name, e.g. "base-app"
	SourceDir string // relative to the project root
	AnswerKey string
}

// Built-in targets.
var (
	BaseApp = Target{Name: "base-app", SourceDir: "base_app", AnswerKey: answers.KeyBaseApp}
	Langs   = Target{Name: "langs", SourceDir: "langs", AnswerKey: answers.KeyLangs}
)

// Targets returns the built-in targets in the order the run pipeline
// flattens them.
func Targets() []Target {
	return []Target{BaseApp, Langs}
}

// Lookup returns the built-in target with the given CLI name.
func Lookup(name string) (Target, error) {
	for _, t := range Targets() {
		if t.Name == name {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("unknown flatten target %q: expected %q or %q", name, BaseApp.Name, Langs.Name)
}

// WithSourceDir returns a copy of t reading from dir. Empty dir keeps the
// default.
func (t Target) WithSourceDir(dir string) Target {
	if dir != "" {
		t.SourceDir = dir
	}
	return t
}

// MovedFile records one file moved into the project root.
type MovedFile struct {
	Name        string
	Stack       string
	Overwritten bool // a file of the same name was replaced
}

// Result holds the outcome of a flatten run.
type Result struct {
	Skipped bool // source directory was absent
	Moved   []MovedFile
}

// Flattener merges the selected stack folders of Target into Root.
type Flattener struct {
	Root   string
	Target Target
	// Out receives progress lines; defaults to os.Stdout.
	Out io.Writer
}

func (f *Flattener) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

// Run flattens the stacks selected in a. See RunResult.
func (f *Flattener) Run(a answers.Answers) error {
	_, err := f.RunResult(a)
	return err
}

// RunResult flattens the stacks selected in a and reports what moved.
// An empty selection fails with *answers.ConfigurationError before the
// filesystem is touched. A missing source directory is a no-op.
func (f *Flattener) RunResult(a answers.Answers) (*Result, error) {
	stacks, err := a.RequireSelection(f.Target.AnswerKey)
	if err != nil {
		return nil, err
	}

	w := f.out()
	srcRoot := filepath.Join(f.Root, f.Target.SourceDir)
	if _, err := os.Stat(srcRoot); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "%s folder not found, skipping flatten.\n", f.Target.SourceDir)
		return &Result{Skipped: true}, nil
	} else if err != nil {
		return nil, fmt.Errorf("checking %s: %w", srcRoot, err)
	}

	result := &Result{}
	for _, stack := range stacks {
		moved, err := f.flattenStack(w, srcRoot, stack)
		if err != nil {
			return result, err
		}
		result.Moved = append(result.Moved, moved...)
	}
	return result, nil
}

// flattenStack moves the regular files of srcRoot/stack into the root and
// removes the emptied folder. Nested directories are left in place, which
// makes the final removal fail.
func (f *Flattener) flattenStack(w io.Writer, srcRoot, stack string) ([]MovedFile, error) {
	stackDir := filepath.Join(srcRoot, stack)
	info, err := os.Stat(stackDir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(stackDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", stackDir, err)
	}

	var moved []MovedFile
	for _, entry := range entries {
		name := entry.Name()
		srcPath := filepath.Join(stackDir, name)

		// Stat follows symlinks so a link to a file is moved like a file.
		srcInfo, err := os.Stat(srcPath)
		if err != nil || !srcInfo.Mode().IsRegular() {
			continue
		}

		destPath := filepath.Join(f.Root, name)
		overwritten := false
		if destInfo, err := os.Lstat(destPath); err == nil {
			if destInfo.IsDir() {
				return moved, fmt.Errorf("cannot move %s from %s: %s is a directory", name, stack, destPath)
			}
			fmt.Fprintf(w, "Warning: %s hit by %s (Overwriting)\n", name, stack)
			if err := os.Remove(destPath); err != nil {
				return moved, fmt.Errorf("removing %s: %w", destPath, err)
			}
			overwritten = true
		}

		if err := platform.MoveFile(srcPath, destPath); err != nil {
			return moved, err
		}
		fmt.Fprintf(w, "Moved: %s from %s\n", name, stack)
		moved = append(moved, MovedFile{Name: name, Stack: stack, Overwritten: overwritten})
	}

	if err := os.Remove(stackDir); err != nil {
		return moved, fmt.Errorf("removing stack folder %s: %w", stackDir, err)
	}
	return moved, nil
}
