package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/andreyzebin/audio-connect-tray/pkg/runner"
)

func main() {
	_, err := parser.Parse()
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status. A script's
// own status is passed through.
func exitCode(err error) int {
	var exitErr *runner.ExitError
	var flagsErr *flags.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr) && exitErr.Code > 0:
		return exitErr.Code
	case errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp:
		return 0
	}
	return 1
}
