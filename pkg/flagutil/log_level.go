package flagutil

import (
	"log/slog"

	"github.com/jessevdk/go-flags"
)

// LogLevel extends slog.Level to support flag parsing.
type LogLevel struct {
	slog.Level
}

var _ flags.Unmarshaler = (*LogLevel)(nil)

// UnmarshalFlag calls UnmarshalText for go-flags compatibility.
func (l *LogLevel) UnmarshalFlag(value string) error {
	return l.UnmarshalText([]byte(value))
}
