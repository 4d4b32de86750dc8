package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/jessevdk/go-flags"

	"github.com/andreyzebin/audio-connect-tray/app"
)

func init() {
	parser.AddCommand("list", "List rules", "Prints every rule and warns about rules shadowed by an earlier one", &ListCmd{})
}

var _ flags.Commander = (*ListCmd)(nil)

type ListCmd struct{}

// Execute runs the list command.
func (c *ListCmd) Execute(args []string) error {
	cfg, err := app.ParseConfigFile(opts.ConfigPath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, r := range cfg.Rules {
		fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Args)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, o := range cfg.Rules.Overlaps() {
		slog.Warn("Rule may be shadowed", "rule", o.Later.Name, "by", o.Earlier.Name)
	}
	return nil
}
