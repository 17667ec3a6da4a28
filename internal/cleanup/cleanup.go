package cleanup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RemovalList is the default set of template-internal paths, relative to
// the project root, removed after generation.
var RemovalList = []string{
	"base_app",
	"langs",
	"hooks",
	"templates",
	".copier-answers.yml",
}

// Paths returns the removal list for a project whose stack folders and
// answers file may have been renamed in settings. Empty arguments keep the
// defaults.
func Paths(baseAppDir, langsDir, answersFile string) []string {
	paths := append([]string{}, RemovalList...)
	replace := func(i int, v string) {
		if v != "" {
			paths[i] = v
		}
	}
	replace(0, baseAppDir)
	replace(1, langsDir)
	replace(4, answersFile)
	return paths
}

// Cleaner removes Paths under Root.
type Cleaner struct {
	Root  string
	Paths []string // defaults to RemovalList
	// Out receives one confirmation line per path; defaults to os.Stdout.
	Out io.Writer
}

// Run removes every listed path that exists. Directories are removed
// recursively with errors ignored; a file that cannot be removed is
// reported and skipped. Every entry gets a confirmation line whether or
// not it existed. Run never fails.
func (c *Cleaner) Run() error {
	w := c.Out
	if w == nil {
		w = os.Stdout
	}
	paths := c.Paths
	if paths == nil {
		paths = RemovalList
	}

	for _, p := range paths {
		full := p
		if !filepath.IsAbs(p) {
			full = filepath.Join(c.Root, p)
		}

		if info, err := os.Lstat(full); err == nil {
			if info.IsDir() {
				_ = os.RemoveAll(full)
			} else if err := os.Remove(full); err != nil {
				fmt.Fprintf(w, "  [WARN] Could not remove %s: %v\n", p, err)
			}
		}

		fmt.Fprintf(w, "Cleaned up %s\n", p)
	}
	return nil
}
