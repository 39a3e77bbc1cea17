package git

import (
	"errors"
	"os/exec"
)

type exitStatus interface {
	ExitStatus() int
}

// ExitStatus returns the exit code carried by err: 0 for nil, the subprocess
// exit code when an exec.ExitError (possibly wrapped) is in the chain, and 1
// for any other error.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if code := ee.ExitCode(); code > 0 {
			return code
		}
		return 1
	}
	var es exitStatus
	if errors.As(err, &es) {
		return es.ExitStatus()
	}
	return 1
}
