// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"loopcmp/internal/jsonlutil"
	"loopcmp/internal/output"
	"loopcmp/internal/sweep"
)

// StartMotifJSONLWriter streams each report as one JSON line (v1).
func StartMotifJSONLWriter(out io.Writer, bufSize int) (chan<- sweep.MotifReport, <-chan error) {
	return jsonlutil.Start[sweep.MotifReport](out, bufSize,
		func(enc *json.Encoder, m sweep.MotifReport) error {
			return enc.Encode(output.ToAPIMotif(m))
		},
		IsBrokenPipe,
	)
}

// StreamMotifsJSONL feeds list through StartMotifJSONLWriter and waits.
func StreamMotifsJSONL(out io.Writer, list []sweep.MotifReport) error {
	in, done := StartMotifJSONLWriter(out, 0)
	for _, m := range list {
		in <- m
	}
	close(in)
	return <-done
}
