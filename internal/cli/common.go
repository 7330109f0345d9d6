// internal/cli/common.go
package cli

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"loopcmp/internal/writers"
)

// Common holds flags shared by every command.
type Common struct {
	Output  string // text|csv|json (+jsonl for motifs)
	Header  bool   // true unless --no-header
	Quiet   bool
	Version bool
	Help    bool
}

// Register wires shared flags onto fs and returns a pointer to the
// "no-header" bool; AfterParse turns it into Common.Header.
func Register(fs *flag.FlagSet, c *Common) *bool {
	fs.StringVar(&c.Output, "output", "text", "output: text | csv | json [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show help")
	fs.BoolVar(&c.Help, "help", false, "show help")
	return &noHeader
}

// AfterParse finalizes Header and checks the output format against the
// writers registered for the command's result kind.
func AfterParse(c *Common, noHeader *bool, motifs bool) error {
	c.Header = !*noHeader
	formats := writers.TableFormats()
	if motifs {
		formats = writers.MotifFormats()
	}
	if !slices.Contains(formats, c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, " | "))
	}
	return nil
}
