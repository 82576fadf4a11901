package frostql

import (
	"errors"
	"fmt"
)

// Standard error values for consistency
var (
	// ErrSchemaRequired indicates a format that needs an explicit schema was
	// read without one
	ErrSchemaRequired = errors.New("frostql: must provide a schema before reading this format")

	// ErrSchemaNotAllowed indicates a semi-structured format was read with a
	// user-supplied schema
	ErrSchemaNotAllowed = errors.New("frostql: this format does not support a user-supplied schema")

	// ErrEmptyPath indicates an empty stage path or table name
	ErrEmptyPath = errors.New("frostql: empty path")

	// ErrEmptyNamespace indicates an empty namespace passed to Use
	ErrEmptyNamespace = errors.New("frostql: empty namespace")

	// ErrNilExecutor indicates a session was created without an executor
	ErrNilExecutor = errors.New("frostql: nil executor")

	// ErrUnsupportedCompression indicates a compression type that cannot be
	// produced client-side
	ErrUnsupportedCompression = errors.New("frostql: unsupported compression type")

	// ErrEmptyWorkbook indicates a workbook with no sheets
	ErrEmptyWorkbook = errors.New("frostql: workbook has no sheets")
)

// ConfigError reports a reader-contract violation detected before any
// remote call. It is always fatal to the single method invocation that
// raised it; the Reader itself remains valid for reuse.
type ConfigError struct {
	// Format is the file format whose contract was violated
	Format FileFormat
	// Err is the underlying sentinel error
	Err error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: format %s", e.Err, e.Format)
}

// Unwrap returns the underlying sentinel so errors.Is works
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError naming the offending format.
func newConfigError(format FileFormat, err error) *ConfigError {
	return &ConfigError{Format: format, Err: err}
}
