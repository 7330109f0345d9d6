package sweep

import (
	"context"
	"errors"
	"math"
	"testing"

	"loopcmp-core/peptide"
	"loopcmp-core/protein"
)

func loopOne() *protein.Collection {
	return protein.NewCollection(
		protein.Protein{Name: "2", Peptides: []string{"lspsrpgmqd"}},
		protein.Protein{Name: "5", Peptides: []string{"IYCSFVEM"}},
		protein.Protein{Name: "13", Peptides: []string{"HWYSFNKKWK"}},
		protein.Protein{Name: "142", Peptides: []string{"PTQVSEFTRC"}},
	)
}

func uneven() *protein.Collection {
	return protein.NewCollection(
		protein.Protein{Name: "2", Peptides: []string{"lspsrpgmqd", "fqfhsqymkr"}},
		protein.Protein{Name: "5", Peptides: []string{"IYCSFVEM", "PQIMNHIGNQKTREW"}},
		protein.Protein{Name: "13", Peptides: []string{"HWYSFNKKWK", "TVHMNPNKWA", "VEELGPWITV"}},
		protein.Protein{Name: "142", Peptides: []string{"PTQVSEFTRC"}},
	)
}

func sameRow(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && !(math.IsNaN(a[i]) && math.IsNaN(b[i])) {
			return false
		}
	}
	return true
}

func TestFull(t *testing.T) {
	sh := protein.Shift{Loops: []string{"loop_1"}, Side: peptide.First, Index: 3}
	tab, err := Full(context.Background(), uneven(), FullOptions{Source: "test_data", Shift: sh})
	if err != nil {
		t.Fatalf("Full: %v", err)
	}
	if tab.Title != "test_data [loop_1] shift(loop_1/first/3)" {
		t.Errorf("title = %q", tab.Title)
	}
	if len(tab.Rows) != 4 || len(tab.Columns) != 4 {
		t.Fatalf("shape %dx%d", len(tab.Rows), len(tab.Columns))
	}
	if want := []float64{50.55, 47.4, 78.4, 59.3}; tab.Rows[2].Label != "13" || !sameRow(tab.Rows[2].Values, want) {
		t.Errorf("row 13 = %+v, want %v", tab.Rows[2], want)
	}

	one, err := Full(context.Background(), uneven(), FullOptions{Source: "test_data", Shift: sh, Proteins: []string{"13"}})
	if err != nil || len(one.Rows) != 1 || !sameRow(one.Rows[0].Values, tab.Rows[2].Values) {
		t.Fatalf("single protein of interest: %+v %v", one, err)
	}
}

func TestFullMissingLoop(t *testing.T) {
	_, err := Full(context.Background(), uneven(), FullOptions{Loops: []string{"loop_1", "loop_2"}})
	if !errors.Is(err, protein.ErrMissingLoop) {
		t.Fatalf("want ErrMissingLoop, got %v", err)
	}
}

func TestFullCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Full(ctx, loopOne(), FullOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestAllShifts(t *testing.T) {
	tab, err := AllShifts(context.Background(), uneven(), "test_data", "142")
	if err != nil {
		t.Fatalf("AllShifts: %v", err)
	}
	if len(tab.Rows) != 2*ShiftRange {
		t.Fatalf("want %d rows, got %d", 2*ShiftRange, len(tab.Rows))
	}
	checks := map[int]struct {
		label string
		want  []float64
	}{
		0:  {"loop_1/first/0", []float64{64.45, 61.9, 63, 56.7}},
		3:  {"loop_1/first/3", []float64{64.75, 58.7, 60.7, 77.2}},
		8:  {"loop_1/second/0", []float64{74.75, 58.5, 64.3, 56.7}},
		15: {"loop_1/second/7", []float64{57.05, 44.8, 53.3, 111.4}},
	}
	for i, c := range checks {
		r := tab.Rows[i]
		if r.Label != c.label || !sameRow(r.Values, c.want) {
			t.Errorf("row %d = %+v, want %s %v", i, r, c.label, c.want)
		}
	}
	if tab.Subject != "142" || tab.Title != "test_data protein 142 all shifts" {
		t.Errorf("subject/title = %q / %q", tab.Subject, tab.Title)
	}
}

func TestAllShiftsErrors(t *testing.T) {
	if _, err := AllShifts(context.Background(), uneven(), "x", "nope"); !errors.Is(err, protein.ErrUnknownProtein) {
		t.Errorf("want ErrUnknownProtein, got %v", err)
	}
	if _, err := AllShifts(context.Background(), uneven(), "x", "13"); !errors.Is(err, protein.ErrMissingLoop) {
		t.Errorf("want ErrMissingLoop, got %v", err)
	}
}

func TestBestShifts(t *testing.T) {
	want := [][]float64{
		{117.3, 62.75, 63.55, 75.65},
		{62.75, 100.95, 74.5, 61.9},
		{63.55, 74.5, 103.2, 64.3},
		{75.65, 61.9, 64.3, 111.4},
	}
	for _, threads := range []int{1, 4} {
		tab, err := BestShifts(context.Background(), loopOne(), "test", threads)
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		for i, r := range tab.Rows {
			if r.Label != tab.Columns[i] || !sameRow(r.Values, want[i]) {
				t.Errorf("threads=%d row %d = %+v, want %v", threads, i, r, want[i])
			}
		}
	}
}

func TestBestShiftsError(t *testing.T) {
	if _, err := BestShifts(context.Background(), uneven(), "test", 2); !errors.Is(err, protein.ErrMissingLoop) {
		t.Fatalf("want ErrMissingLoop, got %v", err)
	}
}

func TestQuick(t *testing.T) {
	c := protein.NewCollection(
		protein.Protein{Name: "2", Peptides: []string{"lspsrpgmqd", "fqfhsqymkr"}},
		protein.Protein{Name: "5", Peptides: []string{"IYCSFVEM", "PQIMNHIGNQKTREW"}},
		protein.Protein{Name: "13", Peptides: []string{"HWYSFNKKWK", "TVHMNPNKWA", "VEELGPWITV"}},
	)
	tabs, err := Quick(context.Background(), c, "q")
	if err != nil {
		t.Fatalf("Quick: %v", err)
	}
	if len(tabs) != len(QuickShifts) {
		t.Fatalf("want %d tables, got %d", len(QuickShifts), len(tabs))
	}
	if want := []float64{141.35, 309, 130.35}; !sameRow(tabs[0].Rows[1].Values, want) {
		t.Errorf("unshifted row 5 = %v, want %v", tabs[0].Rows[1].Values, want)
	}
	if _, err := Quick(context.Background(), uneven(), "q"); !errors.Is(err, protein.ErrMissingLoop) {
		t.Errorf("want ErrMissingLoop, got %v", err)
	}
}

func TestShifts(t *testing.T) {
	got := Shifts([]string{"loop_1", "loop_2"})
	if len(got) != 2*2*ShiftRange {
		t.Fatalf("len = %d", len(got))
	}
	if got[ShiftRange].Side != peptide.Second || got[2*ShiftRange].Loops[0] != "loop_2" {
		t.Fatalf("unexpected order: %v %v", got[ShiftRange], got[2*ShiftRange])
	}
}
