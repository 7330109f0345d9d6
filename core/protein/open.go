// core/protein/open.go
package protein

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// gzipFile closes the decompressor and the underlying file together.
type gzipFile struct {
	*gzip.Reader
	fh *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if cerr := g.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// openInput opens path for reading; "-" is stdin. Gzip input is detected by
// magic number (1F 8B) or a .gz suffix.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipFile{Reader: gr, fh: fh}, nil
	}
	return fh, nil
}
