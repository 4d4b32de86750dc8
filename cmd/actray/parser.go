package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/andreyzebin/audio-connect-tray/app"
	"github.com/andreyzebin/audio-connect-tray/pkg/flagutil"
)

var opts struct {
	ConfigPath app.Path          `short:"c" long:"config" env:"ACTRAY_CONFIG" description:"Path to the config file" default:"~/.config/actray/config.yaml"`
	LogLevel   flagutil.LogLevel `short:"v" long:"verbosity" description:"Verbosity level"`
}

var errNoMatch = errors.New("no rule matches")

// stdout receives command output.
var stdout io.Writer = os.Stdout

// Global parser instance
var parser = flags.NewParser(&opts, flags.Default)

func init() {
	parser.CommandHandler = handleCommand
}

func handleCommand(cmd flags.Commander, args []string) error {
	logger := slog.New(
		slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: opts.LogLevel.Level,
		}),
	)
	slog.SetDefault(logger)

	slog.Debug(fmt.Sprintf("Running command: %#v", cmd))

	return cmd.Execute(args)
}

// Args collects the argument vector matched against the rules.
type Args struct {
	Tokens []string `positional-arg-name:"args" required:"1"`
}
