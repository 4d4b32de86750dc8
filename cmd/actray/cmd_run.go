package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/andreyzebin/audio-connect-tray/app"
	"github.com/andreyzebin/audio-connect-tray/pkg/runner"
)

func init() {
	parser.AddCommand("run", "Run the matching rule", "Executes the script of the first rule matching the arguments", &RunCmd{})
}

var _ flags.Commander = (*RunCmd)(nil)

type RunCmd struct {
	Shell string `long:"shell" description:"Shell used to run scripts (overrides the config)"`
	Args  Args   `positional-args:"yes" required:"yes"`
}

// Execute runs the run command.
func (c *RunCmd) Execute(args []string) error {
	cfg, err := app.ParseConfigFile(opts.ConfigPath)
	if err != nil {
		return err
	}

	r := cfg.Rules.Match(c.Args.Tokens)
	if r == nil {
		return fmt.Errorf("%w %q", errNoMatch, c.Args.Tokens)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rn := runner.Runner{
		Shell:  cfg.Shell,
		Stdout: stdout,
		Env:    []string{"ACTRAY_RULE=" + r.Name},
	}
	if c.Shell != "" {
		rn.Shell = c.Shell
	}

	return rn.Run(ctx, r.Run, r.Name, c.Args.Tokens)
}
