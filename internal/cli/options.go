// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"loopcmp-core/protein"
	"loopcmp/internal/cliutil"
)

// Commands
const (
	CmdCompare = "compare"
	CmdShifts  = "shifts"
	CmdBest    = "best"
	CmdMatrix  = "matrix"
	CmdQuick   = "quick"
	CmdMotifs  = "motifs"
)

// Commands lists every command in help order.
var Commands = []string{CmdCompare, CmdShifts, CmdBest, CmdMatrix, CmdQuick, CmdMotifs}

var ErrUnknownCommand = errors.New("unknown command")

// Options holds the parsed flags and input of one command.
type Options struct {
	Common
	Command string
	Input   string // table path or "-"; empty for matrix

	// compare, motifs
	Loops []string
	// compare
	Proteins []string
	Shift    protein.Shift
	// compare, shifts
	NoSelf bool
	// shifts
	Protein string
	// best
	Threads int
	// matrix
	Blosum bool
}

// ParseArgs registers the flags of cmd on fs, parses argv and validates.
// A help request returns flag.ErrHelp with usage installed on fs.
func ParseArgs(fs *flag.FlagSet, cmd string, argv []string) (Options, error) {
	opt := Options{Command: cmd}
	noHeader := Register(fs, &opt.Common)

	var loops, proteins, shift string
	switch cmd {
	case CmdCompare:
		fs.StringVar(&loops, "loops", "", "comma-separated loops to compare [loop_1]")
		fs.StringVar(&proteins, "proteins", "", "comma-separated proteins of interest [all]")
		fs.StringVar(&shift, "shift", "", "gap shift loops:side:index, e.g. loop_1+loop_2:second:1 [none]")
		fs.BoolVar(&opt.NoSelf, "no-self", false, "blank each protein's score against itself [false]")
	case CmdShifts:
		fs.StringVar(&opt.Protein, "protein", "", "protein of interest [*]")
		fs.BoolVar(&opt.NoSelf, "no-self", false, "blank the protein's score against itself [false]")
	case CmdBest:
		fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
		fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	case CmdMatrix:
		fs.BoolVar(&opt.Blosum, "blosum", false, "print BLOSUM62 instead of the amino acid scores [false]")
	case CmdQuick:
	case CmdMotifs:
		fs.StringVar(&loops, "loops", "", "comma-separated loops to scan [all]")
	default:
		return opt, fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
	UsageCommon(fs, cmd)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if err := AfterParse(&opt.Common, noHeader, cmd == CmdMotifs); err != nil {
		return opt, err
	}

	opt.Loops = cliutil.SplitList(loops)
	opt.Proteins = cliutil.SplitList(proteins)
	var err error
	if opt.Shift, err = protein.ParseShift(shift); err != nil {
		return opt, err
	}

	switch cmd {
	case CmdMatrix:
		if len(posArgs) > 0 {
			return opt, errors.New("matrix takes no input table")
		}
		return opt, nil
	case CmdShifts:
		if opt.Protein == "" {
			return opt, errors.New("--protein is required")
		}
	case CmdBest:
		if opt.Threads < 0 {
			return opt, errors.New("--threads must be ≥ 0")
		}
	}
	opt.Input, err = cliutil.SinglePositional(posArgs)
	return opt, err
}
