// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"loopcmp/internal/version"
)

var summaries = map[string]string{
	CmdCompare: "score proteins against each other over chosen loops",
	CmdShifts:  "score one protein under every single-loop shift",
	CmdBest:    "best score per protein pair over all shifts",
	CmdMatrix:  "amino acid pair scores (or BLOSUM62)",
	CmdQuick:   "loop_1+loop_2 with the five preset shifts",
	CmdMotifs:  "list structural motifs found in each loop",
}

func header(out io.Writer) {
	fmt.Fprintln(out, "loopcmp – loop similarity toolkit")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "License: MIT")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
}

// PrintUsage prints the top-level help listing the commands.
func PrintUsage(out io.Writer) {
	header(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  loopcmp <command> [flags] <table.txt|->")
	fmt.Fprintln(out, "\nCommands:")
	for _, c := range Commands {
		fmt.Fprintf(out, "  %-9s %s\n", c, summaries[c])
	}
	fmt.Fprintln(out, "\nRun 'loopcmp <command> -h' for command flags.")
}

// UsageCommon installs the Usage() handler for cmd on fs.
func UsageCommon(fs *flag.FlagSet, cmd string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(name string) string {
			if f := fs.Lookup(name); f != nil {
				return f.DefValue
			}
			return ""
		}

		header(out)
		fmt.Fprintf(out, "%s: %s\n\n", cmd, summaries[cmd])
		fmt.Fprintln(out, "Usage:")
		if cmd == CmdMatrix {
			fmt.Fprintln(out, "  loopcmp matrix [flags]")
		} else {
			fmt.Fprintf(out, "  loopcmp %s [flags] <table.txt|->\n", cmd)
		}

		switch cmd {
		case CmdCompare:
			fmt.Fprintln(out, "\nCompare:")
			fmt.Fprintln(out, "      --loops list            Loops to compare, comma-separated [loop_1]")
			fmt.Fprintln(out, "      --proteins list         Proteins of interest (rows) [all]")
			fmt.Fprintln(out, "      --shift string          Gap shift loops:side:index (side first|second) [none]")
			fmt.Fprintf(out, "      --no-self               Blank self comparisons [%s]\n", def("no-self"))
		case CmdShifts:
			fmt.Fprintln(out, "\nShifts:")
			fmt.Fprintln(out, "      --protein name          Protein of interest [*]")
			fmt.Fprintf(out, "      --no-self               Blank the self comparison [%s]\n", def("no-self"))
		case CmdBest:
			fmt.Fprintln(out, "\nPerformance:")
			fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		case CmdMatrix:
			fmt.Fprintln(out, "\nMatrix:")
			fmt.Fprintf(out, "      --blosum                Print BLOSUM62 [%s]\n", def("blosum"))
		case CmdMotifs:
			fmt.Fprintln(out, "\nMotifs:")
			fmt.Fprintln(out, "      --loops list            Loops to scan, comma-separated [all]")
		}

		fmt.Fprintln(out, "\nOutput:")
		if cmd == CmdMotifs {
			fmt.Fprintf(out, "  -o, --output string         Output: text | csv | json | jsonl [%s]\n", def("output"))
		} else {
			fmt.Fprintf(out, "  -o, --output string         Output: text | csv | json [%s]\n", def("output"))
		}
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
