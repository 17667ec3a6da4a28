package deps

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/agentx-labs/stackhooks/internal/answers"
)

// Probe is the result of looking up one tool for one stack.
type Probe struct {
	Stack string
	Tool  string
	Path  string // empty when not found
}

// Result collects the probes of a dependency check.
type Result struct {
	Found   []Probe
	Missing []string // in probe order, duplicates kept
}

// OK reports whether every required tool was found.
func (r *Result) OK() bool { return len(r.Missing) == 0 }

// MissingToolsError is returned by Run when tools are absent from PATH.
type MissingToolsError struct {
	Tools []string
}

func (e *MissingToolsError) Error() string {
	return fmt.Sprintf("missing required tools: %s", strings.Join(e.Tools, ", "))
}

// ExitCode is the process status the CLI exits with.
func (e *MissingToolsError) ExitCode() int { return 1 }

// IsMissingTools reports whether err is or wraps a *MissingToolsError.
func IsMissingTools(err error) bool {
	var mt *MissingToolsError
	return errors.As(err, &mt)
}

// Checker probes the search path for the tools of the selected stacks.
type Checker struct {
	// LookPath resolves an executable name; defaults to exec.LookPath.
	LookPath func(file string) (string, error)
	// Out receives the report; defaults to os.Stdout.
	Out io.Writer
}

func (c *Checker) lookPath(name string) (string, error) {
	if c.LookPath != nil {
		return c.LookPath(name)
	}
	return exec.LookPath(name)
}

func (c *Checker) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// Check probes every required tool of every stack, in order.
func (c *Checker) Check(stacks []string) *Result {
	result := &Result{Missing: []string{}}
	for _, stack := range stacks {
		for _, tool := range RequiredTools(stack) {
			path, err := c.lookPath(tool)
			if err != nil {
				result.Missing = append(result.Missing, tool)
				continue
			}
			result.Found = append(result.Found, Probe{Stack: stack, Tool: tool, Path: path})
		}
	}
	return result
}

// Run checks the stacks selected under "langs" and reports the outcome.
// It returns a *answers.ConfigurationError when no language is selected and
// a *MissingToolsError when any tool is absent.
func (c *Checker) Run(a answers.Answers) error {
	w := c.out()
	fmt.Fprintln(w, "Checking system dependencies..")

	stacks, err := a.RequireSelection(answers.KeyLangs)
	if err != nil {
		return err
	}

	result := c.Check(stacks)
	if result.OK() {
		fmt.Fprintln(w, "OK! All required tools are available.")
		return nil
	}

	fmt.Fprintln(w, "\nMISSING TOOLS DETECTED [!]")
	fmt.Fprintln(w, "This template requires the following tools which were not found in your PATH:")
	for _, tool := range result.Missing {
		fmt.Fprintf(w, "  - %s\n", tool)
	}
	fmt.Fprintln(w, "\nPlease install these tools to ensure linters/scripts work correctly.")
	fmt.Fprintln(w)

	return &MissingToolsError{Tools: result.Missing}
}
