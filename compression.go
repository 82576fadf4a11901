package frostql

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// newCompressionWriter wraps a writer with the requested compression
// encoder. The returned func flushes and closes the encoder; the caller
// still owns the underlying writer.
func newCompressionWriter(w io.Writer, compression CompressionType) (io.Writer, func() error, error) {
	switch compression {
	case CompressionNone:
		return w, func() error { return nil }, nil

	case CompressionGZ:
		gzWriter := gzip.NewWriter(w)
		return gzWriter, gzWriter.Close, nil

	case CompressionXZ:
		xzWriter, err := xz.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzWriter, xzWriter.Close, nil

	case CompressionZSTD:
		zstdWriter, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zstdWriter, zstdWriter.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, compression)
	}
}

// detectCompression detects the compression type from a file path
// extension. Files the client cannot encode itself (e.g. .bz2) still
// detect as none and upload as-is.
func detectCompression(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGZ
	case ".xz":
		return CompressionXZ
	case ".zst":
		return CompressionZSTD
	default:
		return CompressionNone
	}
}

// compressToTemp compresses the file at path into a temporary file and
// returns its location. The caller removes the file when done.
func compressToTemp(path string, compression CompressionType) (string, error) {
	source, err := os.Open(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = source.Close() }()

	pattern := "frostql-" + filepath.Base(path) + "-*" + compression.Extension()
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	writer, closeWriter, err := newCompressionWriter(tmp, compression)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}

	if _, err := io.Copy(writer, source); err != nil {
		_ = closeWriter()
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to compress file: %w", err)
	}
	if err := closeWriter(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to finalize compression: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	return tmp.Name(), nil
}
