package frostql

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// putConfig holds configuration for staging a local file.
type putConfig struct {
	compression  CompressionType
	autoCompress bool
	overwrite    bool
	parallel     int
}

// defaultPutConfig mirrors the remote engine's PUT defaults: gzip
// auto-compression, no overwrite, four parallel upload threads.
func defaultPutConfig() putConfig {
	return putConfig{
		compression:  CompressionGZ,
		autoCompress: true,
		overwrite:    false,
		parallel:     4,
	}
}

// PutOption configures PutFile and PutWorkbook.
type PutOption func(*putConfig)

// WithCompression selects the client-side compression used when
// auto-compression applies. Gzip is the default.
func WithCompression(compression CompressionType) PutOption {
	return func(cfg *putConfig) {
		cfg.compression = compression
	}
}

// WithAutoCompress toggles client-side compression of uncompressed source
// files before upload. Enabled by default.
func WithAutoCompress(enabled bool) PutOption {
	return func(cfg *putConfig) {
		cfg.autoCompress = enabled
	}
}

// WithOverwrite allows the upload to replace a staged file with the same
// name.
func WithOverwrite(overwrite bool) PutOption {
	return func(cfg *putConfig) {
		cfg.overwrite = overwrite
	}
}

// WithParallel sets the number of parallel threads the engine uses for the
// upload.
func WithParallel(n int) PutOption {
	return func(cfg *putConfig) {
		if n > 0 {
			cfg.parallel = n
		}
	}
}

// PutFile uploads a local file to a stage by issuing a PUT statement
// through the session's connection. Uncompressed sources are compressed
// client-side first (gzip by default); files whose extension already
// indicates compression upload as-is with the matching SOURCE_COMPRESSION.
//
// Example:
//
//	err := session.PutFile(ctx, "/data/users.csv", "@mystage/users",
//	    frostql.WithCompression(frostql.CompressionZSTD),
//	    frostql.WithOverwrite(true))
func (s *Session) PutFile(ctx context.Context, localPath, stagePath string, opts ...PutOption) error {
	if localPath == "" || stagePath == "" {
		return ErrEmptyPath
	}

	cfg := defaultPutConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	source := localPath
	sourceCompression := detectCompression(localPath)
	if cfg.autoCompress && sourceCompression == CompressionNone && cfg.compression != CompressionNone {
		compressed, err := compressToTemp(localPath, cfg.compression)
		if err != nil {
			return err
		}
		defer removeQuietly(compressed)
		source = compressed
		sourceCompression = cfg.compression
	}

	_, err := s.exec.ExecContext(ctx, putStatement(source, stagePath, sourceCompression, cfg))
	return err
}

// putStatement renders the PUT command for an already-prepared source
// file. Compression happened client-side, so AUTO_COMPRESS is always off.
func putStatement(source, stagePath string, sourceCompression CompressionType, cfg putConfig) string {
	var sb strings.Builder
	sb.WriteString("PUT ")
	sb.WriteString(QuoteLiteral(fileURI(source)))
	sb.WriteString(" ")
	sb.WriteString(QuoteLiteral(stagePath))
	sb.WriteString(" AUTO_COMPRESS = false")
	sb.WriteString(" SOURCE_COMPRESSION = ")
	sb.WriteString(sourceCompression.String())
	fmt.Fprintf(&sb, " PARALLEL = %d", cfg.parallel)
	if cfg.overwrite {
		sb.WriteString(" OVERWRITE = true")
	}
	return sb.String()
}

// fileURI converts a local path into the file:// form PUT expects.
func fileURI(path string) string {
	return "file://" + filepath.ToSlash(path)
}

func removeQuietly(path string) {
	_ = os.Remove(path)
}
