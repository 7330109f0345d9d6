// internal/sweep/sweep.go
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"loopcmp-core/peptide"
	"loopcmp-core/protein"
)

// ShiftRange is the number of insertion indices tried per loop and side.
const ShiftRange = 8

// DefaultLoops is used when no loops are requested.
var DefaultLoops = []string{"loop_1"}

// FullOptions configures Full.
type FullOptions struct {
	Source   string   // label for the input, used in the title
	Loops    []string // default DefaultLoops
	Proteins []string // proteins of interest; default all
	Shift    protein.Shift
}

// CheckLoops fails with protein.ErrMissingLoop if a loop is absent from any
// protein of c.
func CheckLoops(c *protein.Collection, loops []string) error {
	for p := range c.All() {
		for _, l := range loops {
			if _, ok := p.Loop(l); !ok {
				return fmt.Errorf("%w %s in protein %q", protein.ErrMissingLoop, l, p.Name)
			}
		}
	}
	return nil
}

func scores(loops []string, c *protein.Collection, of string, sh protein.Shift) ([]float64, error) {
	out := make([]float64, 0, c.Len())
	for v, err := range protein.Compare(loops, c, of, sh) {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Full compares each protein of interest against every protein.
func Full(ctx context.Context, c *protein.Collection, o FullOptions) (Table, error) {
	loops := o.Loops
	if len(loops) == 0 {
		loops = DefaultLoops
	}
	of := o.Proteins
	if len(of) == 0 {
		of = c.Names()
	}
	t := Table{
		Title:   fmt.Sprintf("%s [%s] shift(%s)", o.Source, strings.Join(loops, ", "), o.Shift),
		Columns: c.Names(),
	}
	if err := CheckLoops(c, loops); err != nil {
		return t, err
	}
	for _, name := range of {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		vals, err := scores(loops, c, name, o.Shift)
		if err != nil {
			return t, err
		}
		t.Rows = append(t.Rows, Row{Label: name, Values: vals})
	}
	return t, nil
}

// Shifts lists every single-loop shift for the given loops, loop-major then
// side then index.
func Shifts(loops []string) []protein.Shift {
	out := make([]protein.Shift, 0, len(loops)*2*ShiftRange)
	for _, l := range loops {
		for _, side := range []peptide.Side{peptide.First, peptide.Second} {
			for i := 0; i < ShiftRange; i++ {
				out = append(out, protein.Shift{Loops: []string{l}, Side: side, Index: i})
			}
		}
	}
	return out
}

// AllShifts compares one protein against every protein under every
// single-loop shift of its own loops.
func AllShifts(ctx context.Context, c *protein.Collection, source, name string) (Table, error) {
	t := Table{
		Title:   fmt.Sprintf("%s protein %s all shifts", source, name),
		Subject: name,
		Columns: c.Names(),
	}
	p, ok := c.Get(name)
	if !ok {
		return t, fmt.Errorf("%w %q", protein.ErrUnknownProtein, name)
	}
	loops := p.LoopIDs()
	if err := CheckLoops(c, loops); err != nil {
		return t, err
	}
	for _, sh := range Shifts(loops) {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		vals, err := scores(loops, c, name, sh)
		if err != nil {
			return t, err
		}
		t.Rows = append(t.Rows, Row{Label: sh.String(), Values: vals})
	}
	return t, nil
}

// BestShifts runs AllShifts for every protein and keeps, per column, the
// highest score. Proteins are processed concurrently (threads <= 0 means all
// CPUs); rows stay in collection order.
func BestShifts(ctx context.Context, c *protein.Collection, source string, threads int) (Table, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	names := c.Names()
	t := Table{
		Title:   fmt.Sprintf("highest scores from all shifts, %s", source),
		Columns: names,
		Rows:    make([]Row, len(names)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, name := range names {
		g.Go(func() error {
			all, err := AllShifts(gctx, c, source, name)
			if err != nil {
				return err
			}
			t.Rows[i] = Row{Label: name, Values: all.ColumnMax()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Table{Title: t.Title, Columns: names}, err
	}
	return t, nil
}

// QuickLoops and QuickShifts are the presets of the quick analysis.
var (
	QuickLoops  = []string{"loop_1", "loop_2"}
	QuickShifts = []protein.Shift{
		protein.NoShift,
		{Loops: []string{"loop_1"}, Side: peptide.First, Index: 1},
		{Loops: []string{"loop_1"}, Side: peptide.Second, Index: 1},
		{Loops: []string{"loop_2"}, Side: peptide.First, Index: 1},
		{Loops: []string{"loop_2"}, Side: peptide.Second, Index: 1},
	}
)

// Quick runs Full over loop_1 and loop_2 for each preset shift.
func Quick(ctx context.Context, c *protein.Collection, source string) ([]Table, error) {
	if err := CheckLoops(c, QuickLoops); err != nil {
		return nil, err
	}
	out := make([]Table, 0, len(QuickShifts))
	for _, sh := range QuickShifts {
		t, err := Full(ctx, c, FullOptions{Source: source, Loops: QuickLoops, Shift: sh})
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
