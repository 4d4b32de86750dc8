package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/andreyzebin/audio-connect-tray/app"
)

func init() {
	parser.AddCommand("check", "Check which rule matches", "Prints the name of the first rule matching the arguments", &CheckCmd{})
}

var _ flags.Commander = (*CheckCmd)(nil)

// CheckCmd defines the "check" command.
type CheckCmd struct {
	Args Args `positional-args:"yes" required:"yes"`
}

// Execute runs the check command.
func (c *CheckCmd) Execute(args []string) error {
	cfg, err := app.ParseConfigFile(opts.ConfigPath)
	if err != nil {
		return err
	}

	r := cfg.Rules.Match(c.Args.Tokens)
	if r == nil {
		return fmt.Errorf("%w %q", errNoMatch, c.Args.Tokens)
	}

	_, err = fmt.Fprintln(stdout, r.Name)
	return err
}
