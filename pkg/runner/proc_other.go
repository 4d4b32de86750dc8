//go:build !unix

package runner

import "os/exec"

func setCancel(cmd *exec.Cmd) {}

func exitCode(err *exec.ExitError) int {
	if code := err.ExitCode(); code >= 0 {
		return code
	}
	return 1
}
