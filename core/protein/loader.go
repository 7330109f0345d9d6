// core/protein/loader.go
package protein

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadTable reads a protein table from path ("-" for stdin, gzip allowed).
func LoadTable(path string) (*Collection, error) {
	rc, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return readTable(rc, path)
}

// ReadTable parses one protein per line: a name followed by its loop
// peptides, separated by tabs or spaces. Blank lines and '#' comments are
// skipped.
func ReadTable(r io.Reader) (*Collection, error) { return readTable(r, "input") }

func readTable(r io.Reader, src string) (*Collection, error) {
	c := NewCollection()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, fmt.Errorf("%s:%d protein %q has no loops", src, ln, f[0])
		}
		c.Add(Protein{Name: f[0], Peptides: f[1:]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return c, nil
}
