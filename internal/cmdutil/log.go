// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a "WARN: " line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Errorf prints err to dst and returns code, for one-line exits.
func Errorf(dst io.Writer, code int, err error) int {
	_, _ = fmt.Fprintln(dst, "loopcmp:", err)
	return code
}
