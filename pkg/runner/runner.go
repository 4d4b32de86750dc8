package runner

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

const (
	DefaultShell = "/bin/sh"
	// DefaultWaitDelay bounds how long Run waits after cancellation before
	// the script is killed and its output pipes are closed.
	DefaultWaitDelay = 5 * time.Second
)

// ExitError reports a script that ran but exited non-zero.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Name, e.Code)
}

// Runner executes rule scripts through a shell. The zero value uses
// DefaultShell and the process's standard streams.
type Runner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env is appended to the current environment.
	Env []string
	// WaitDelay overrides DefaultWaitDelay.
	WaitDelay time.Duration
}

// Command builds `<shell> -c <script> <name> <args...>`, so the script
// sees name as $0 and the matched arguments as $1..$n.
func (r *Runner) Command(ctx context.Context, script, name string, args []string) *exec.Cmd {
	shell := r.Shell
	if shell == "" {
		shell = DefaultShell
	}

	argv := append([]string{"-c", script, name}, args...)
	cmd := exec.CommandContext(ctx, shell, argv...)
	cmd.Stdin = cmp.Or[io.Reader](r.Stdin, os.Stdin)
	cmd.Stdout = cmp.Or[io.Writer](r.Stdout, os.Stdout)
	cmd.Stderr = cmp.Or[io.Writer](r.Stderr, os.Stderr)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	cmd.WaitDelay = cmp.Or(r.WaitDelay, DefaultWaitDelay)
	setCancel(cmd)
	return cmd
}

// Run executes script and waits for it. A non-zero exit is returned as
// *ExitError. When ctx is done the script's process group gets SIGTERM and
// a script killed by a signal reports 128+signal, as a shell would.
func (r *Runner) Run(ctx context.Context, script, name string, args []string) error {
	cmd := r.Command(ctx, script, name, args)

	slog.Debug("Starting script", "name", name, "args", args, "shell", cmd.Path)
	start := time.Now()

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = &ExitError{Name: name, Code: exitCode(exitErr)}
	} else if err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}

	slog.Info("Script finished", "name", name, "elapsed", time.Since(start), "error", err)
	return err
}
