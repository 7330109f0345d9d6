// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so flags
// may follow the input file. '-' is a positional (stdin); everything after
// '--' is positional.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !boolFlags[strings.TrimLeft(arg, "-")] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return flagArgs, posArgs
}

// ErrNoInput is returned by SinglePositional when the input file is missing.
var ErrNoInput = errors.New("missing input table (path or '-')")

// SinglePositional returns the one input path among posArgs.
func SinglePositional(posArgs []string) (string, error) {
	switch len(posArgs) {
	case 0:
		return "", ErrNoInput
	case 1:
		return posArgs[0], nil
	default:
		return "", fmt.Errorf("expected one input table, got %d: %s", len(posArgs), strings.Join(posArgs, " "))
	}
}

// SplitList splits a comma-separated flag value, dropping empty items.
func SplitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
