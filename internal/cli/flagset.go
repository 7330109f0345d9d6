package cli

import (
	"flag"
	"io"
)

// NewFlagSet returns a quiet ContinueOnError FlagSet; parse errors are
// returned, not printed. ParseArgs installs the real Usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}
