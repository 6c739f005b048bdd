package lengths

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Supported compressed-file extensions.
const (
	extGzip = ".gz"
	extZstd = ".zst"
	extLZ4  = ".lz4"
)

// Open opens path for reading, decompressing by extension (.gz, .zst,
// .lz4). The path "-" reads standard input, uncompressed.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	rc, err := Decompress(f, path)
	if err != nil {
		return nil, errors.Join(err, f.Close())
	}

	return rc, nil
}

// Decompress wraps rc with the decompressor selected by the extension of
// name. Closing the result closes rc.
func Decompress(rc io.ReadCloser, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case extGzip:
		zr, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}

		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, rc}}, nil
	case extZstd:
		zr, err := zstd.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}

		return &stackedCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), rc}}, nil
	case extLZ4:
		return &stackedCloser{Reader: lz4.NewReader(rc), closers: []io.Closer{rc}}, nil
	default:
		return rc, nil
	}
}

// stackedCloser closes a decompressor before its underlying source.
type stackedCloser struct {
	io.Reader

	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var errs []error

	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}
