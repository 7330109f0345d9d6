package writers

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"
	"strings"
	"syscall"
	"testing"

	"loopcmp/internal/sweep"
	"loopcmp/pkg/api"
)

func TestFormats(t *testing.T) {
	if got := TableFormats(); !reflect.DeepEqual(got, []string{"csv", "json", "text"}) {
		t.Errorf("table formats = %v", got)
	}
	if got := MotifFormats(); !reflect.DeepEqual(got, []string{"csv", "json", "jsonl", "text"}) {
		t.Errorf("motif formats = %v", got)
	}
}

func TestWriteTablesUnknown(t *testing.T) {
	if err := WriteTables("xml", io.Discard, nil, true); err == nil {
		t.Fatal("expected unknown format error")
	}
	if err := WriteMotifs("xml", io.Discard, nil, true); err == nil {
		t.Fatal("expected unknown format error")
	}
}

func TestWriteTablesJSONArray(t *testing.T) {
	ts := []sweep.Table{
		{Title: "one", Columns: []string{"a"}, Rows: []sweep.Row{{Label: "a", Values: []float64{1}}}},
		{Title: "two", Columns: []string{"a"}, Rows: []sweep.Row{{Label: "a", Values: []float64{2}}}},
	}
	var buf bytes.Buffer
	if err := WriteTables("json", &buf, ts, true); err != nil {
		t.Fatal(err)
	}
	var got []api.TableV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 || got[1].Title != "two" {
		t.Fatalf("json array: %v %+v", err, got)
	}

	buf.Reset()
	if err := WriteTables("text", &buf, ts, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n\n# two\n") {
		t.Fatalf("text tables not separated: %q", buf.String())
	}
}

func TestStreamMotifsJSONL(t *testing.T) {
	list := []sweep.MotifReport{
		{Protein: "a", Loop: "loop_1", Peptide: "ttaa", Motifs: []string{"Multiple beta-branched residues"}},
		{Protein: "b", Loop: "loop_1", Peptide: "AAAA"},
	}
	var buf bytes.Buffer
	if err := WriteMotifs("jsonl", &buf, list, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %q", lines)
	}
	var m api.MotifReportV1
	if err := json.Unmarshal([]byte(lines[1]), &m); err != nil || m.Protein != "b" || m.Motifs == nil {
		t.Fatalf("line 2: %v %+v", err, m)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) || IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatal("IsBrokenPipe misclassified")
	}
}
