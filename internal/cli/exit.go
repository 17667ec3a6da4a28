package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/agentx-labs/stackhooks/internal/deps"
)

type exitCoder interface {
	ExitCode() int
}

// ExitCode maps an Execute error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

// ReportError prints err for the user. Missing tools were already listed
// by the check itself and are not repeated.
func ReportError(w io.Writer, err error) {
	if err == nil || deps.IsMissingTools(err) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
