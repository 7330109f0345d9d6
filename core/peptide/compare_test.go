package peptide

import (
	"errors"
	"testing"

	"loopcmp-core/aminoacid"
)

func TestCompareScenarios(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 string
		side   Side
		at     int
		want   float64
	}{
		{"no shift", "LSPSRPGMQD", "PTQVSEFTRC", NoShift, 0, 58.65},
		{"second shifted at 3", "LSPSRPGMQD", "PTQVSEFTRC", Second, 3, 64.75},
		{"lowercase", "lspsrpgmqd", "PTQVSEFTRC", NoShift, 0, 58.65},
		{"shift index ignored without side", "LSPSRPGMQD", "PTQVSEFTRC", NoShift, 3, 58.65},
		{"empty side", "", "PTQVSEFTRC", NoShift, 0, 0},
	}
	for _, tc := range tests {
		got, err := Compare(tc.p1, tc.p2, tc.side, tc.at)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCompareSymmetricWithoutShift(t *testing.T) {
	pairs := [][2]string{
		{"LSPSRPGMQD", "PTQVSEFTRC"},
		{"IYCSFVEM", "PQIMNHIGNQKTREW"},
		{"HWYSFNKKWK", "tvhmnpnkwa"},
	}
	for _, p := range pairs {
		ab, err := Compare(p[0], p[1], NoShift, 0)
		if err != nil {
			t.Fatal(err)
		}
		ba, _ := Compare(p[1], p[0], NoShift, 0)
		if ab != ba {
			t.Errorf("%s/%s not symmetric: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestCompareTruncatesToShorter(t *testing.T) {
	short, _ := Score("ACD", "ACDEFG", NoShift, 0)
	want := 0.0
	for _, c := range []byte("ACD") {
		v, _ := aminoacid.Score(c, c)
		want += v
	}
	if short != want {
		t.Fatalf("truncation: got %v, want %v", short, want)
	}

	// A gap on the shorter side pulls one more letter from the longer one.
	shifted, _ := Score("ACD", "ACDEFG", First, 1)
	manual := 0.0
	for i, a := range []byte("AXCD") {
		v, _ := aminoacid.Score(a, "ACDEFG"[i])
		manual += v
	}
	if shifted != manual {
		t.Fatalf("shifted truncation: got %v, want %v", shifted, manual)
	}
}

func TestCompareSideMatters(t *testing.T) {
	first, _ := Compare("LSPSRPGMQD", "PTQVSEFTRC", First, 3)
	second, _ := Compare("LSPSRPGMQD", "PTQVSEFTRC", Second, 3)
	if first == second {
		t.Fatalf("expected side to change the score, both %v", first)
	}
}

func TestCompareErrors(t *testing.T) {
	if _, err := Compare("ACB", "ACD", NoShift, 0); !errors.Is(err, aminoacid.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if _, err := Compare("ACD", "ACD", Side(7), 0); !errors.Is(err, ErrBadShift) {
		t.Fatalf("want ErrBadShift, got %v", err)
	}
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]Side{"": NoShift, "none": NoShift, "first": First, "SECOND": Second} {
		got, err := ParseSide(in)
		if err != nil || got != want {
			t.Errorf("ParseSide(%q) = %v, %v", in, got, err)
		}
		if in != "" {
			back, _ := ParseSide(got.String())
			if back != got {
				t.Errorf("round trip %v -> %v", got, back)
			}
		}
	}
	if _, err := ParseSide("third"); !errors.Is(err, ErrBadShift) {
		t.Fatalf("want ErrBadShift, got %v", err)
	}
}
