package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// compressedSuffixes are tried, in order, when a plain log file is absent.
var compressedSuffixes = []string{".gz", ".zst"}

// openLog opens path for reading, decompressing .gz and .zst files. When path
// has no compression suffix and does not exist, compressed siblings
// (path.gz, path.zst) are tried before reporting the file as missing.
func openLog(path string) (io.ReadCloser, string, error) {
	f, err := os.Open(path)
	if err != nil && errors.Is(err, os.ErrNotExist) && !isCompressed(path) {
		for _, suffix := range compressedSuffixes {
			if alt, altErr := os.Open(path + suffix); altErr == nil {
				f, err, path = alt, nil, path+suffix
				break
			}
		}
	}
	if err != nil {
		return nil, path, err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close() //nolint:errcheck
			return nil, path, fmt.Errorf("gzip: %w", err)
		}
		return &stackedReader{Reader: zr, closers: []io.Closer{zr, f}}, path, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close() //nolint:errcheck
			return nil, path, fmt.Errorf("zstd: %w", err)
		}
		rc := zr.IOReadCloser()
		return &stackedReader{Reader: rc, closers: []io.Closer{rc, f}}, path, nil
	default:
		return f, path, nil
	}
}

func isCompressed(path string) bool {
	for _, suffix := range compressedSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// stackedReader closes a decompressor and its underlying file together.
type stackedReader struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReader) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
