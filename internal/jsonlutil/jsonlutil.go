// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// DefaultBuffer is the channel capacity used when Start gets bufSize <= 0.
const DefaultBuffer = 64

// Start encodes every value sent on the returned channel as one JSON line on
// out, and reports the outcome on done once the channel is closed.
//
// The first failing record ends output; its 1-based number is in the error.
// Values sent after a failure are drained so senders never block. Errors for
// which ignore returns true (a reader that hung up) count as success.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, ignore func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = DefaultBuffer
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() { done <- drain(out, in, encode, ignore) }()
	return in, done
}

func drain[T any](out io.Writer, in <-chan T, encode func(*json.Encoder, T) error, ignore func(error) bool) error {
	bw := bufio.NewWriterSize(out, 64<<10)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	var err error
	n := 0
	for v := range in {
		n++
		if err != nil {
			continue
		}
		if e := encode(enc, v); e != nil {
			err = fmt.Errorf("jsonl record %d: %w", n, e)
		}
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil && ignore != nil && ignore(err) {
		return nil
	}
	return err
}
