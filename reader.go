package frostql

import (
	"strings"

	"github.com/frostql/frostql/domain/model"
)

// Reader is a fluent configuration builder that translates file-format
// options and a stage path into a lazy, unexecuted DataFrame. It performs
// no I/O itself; the remote engine reads the files when a triggering action
// runs on the produced handle.
//
// The typical usage pattern is:
//
//	schema := frostql.NewSchema(
//	    frostql.Field{Name: "a", Type: frostql.DataTypeInteger},
//	    frostql.Field{Name: "b", Type: frostql.DataTypeString},
//	)
//	df, err := session.Read().
//	    Option("skip_header", frostql.Int(1)).
//	    Schema(schema).
//	    CSV("@mystage/users.csv")
//
// Configuration methods mutate the builder and return it for chaining.
// Terminal format methods snapshot the current options and schema into the
// handle, so the builder stays reusable afterwards. A Reader is not safe
// for concurrent use without external synchronization.
type Reader struct {
	session *Session
	// userSchema is nil until Schema is called; only CSV reads accept one
	userSchema model.Schema
	// options maps upper-cased option keys to serialized SQL values
	options map[string]string
}

// newReader creates an empty Reader bound to the session.
func newReader(session *Session) *Reader {
	return &Reader{
		session: session,
		options: make(map[string]string),
	}
}

// Schema sets the explicit schema for the data to be read, replacing any
// previous schema. Field names and types are stored verbatim; validation is
// the remote engine's responsibility.
//
// Returns the reader for method chaining.
func (r *Reader) Schema(schema Schema) *Reader {
	r.userSchema = schema
	return r
}

// Option sets a single format-specific or copy option. The key is matched
// case-insensitively and stored upper-cased; a later call for the same key
// overwrites the earlier value. The value is serialized immediately into a
// form safe for direct embedding in generated SQL.
//
// Example:
//
//	df, err := session.Read().
//	    Option("compression", frostql.String("gzip")).
//	    JSON("@mystage/data.json.gz")
//
// Returns the reader for method chaining.
func (r *Reader) Option(key string, value OptionValue) *Reader {
	r.options[strings.ToUpper(key)] = value.sqlValue()
	return r
}

// Options sets multiple options, applying them in the given order; a later
// pair with a duplicate key wins.
//
// Returns the reader for method chaining.
func (r *Reader) Options(pairs ...OptionPair) *Reader {
	for _, pair := range pairs {
		r.Option(pair.Key, pair.Value)
	}
	return r
}

// Table returns a DataFrame over an existing table, bypassing file reading
// entirely. The configured schema and options are not consulted.
//
// The name can be unqualified (resolved against the session's current
// namespace) or fully qualified (db.schema.name).
func (r *Reader) Table(name string) (*DataFrame, error) {
	return r.session.Table(name)
}

// CSV returns a DataFrame set up to load data from the CSV files at the
// given stage path. An explicit schema must be set with Schema first; the
// handle's schema is the field list exactly as given.
func (r *Reader) CSV(path string) (*DataFrame, error) {
	if len(r.userSchema) == 0 {
		return nil, newConfigError(FormatCSV, ErrSchemaRequired)
	}
	return r.readFile(path, FormatCSV, r.userSchema.Clone())
}

// JSON returns a DataFrame set up to load data from the JSON files at the
// given stage path. The entire record is exposed through the single $1
// variant column.
func (r *Reader) JSON(path string) (*DataFrame, error) {
	return r.readSemiStructured(path, FormatJSON)
}

// Avro returns a DataFrame set up to load data from the Avro files at the
// given stage path.
func (r *Reader) Avro(path string) (*DataFrame, error) {
	return r.readSemiStructured(path, FormatAvro)
}

// Parquet returns a DataFrame set up to load data from the Parquet files at
// the given stage path.
func (r *Reader) Parquet(path string) (*DataFrame, error) {
	return r.readSemiStructured(path, FormatParquet)
}

// ORC returns a DataFrame set up to load data from the ORC files at the
// given stage path.
func (r *Reader) ORC(path string) (*DataFrame, error) {
	return r.readSemiStructured(path, FormatORC)
}

// XML returns a DataFrame set up to load data from the XML files at the
// given stage path.
func (r *Reader) XML(path string) (*DataFrame, error) {
	return r.readSemiStructured(path, FormatXML)
}

// readSemiStructured builds a handle for formats that reject a user schema
// and expose records through the $1 variant column.
func (r *Reader) readSemiStructured(path string, format FileFormat) (*DataFrame, error) {
	if len(r.userSchema) != 0 {
		return nil, newConfigError(format, ErrSchemaNotAllowed)
	}
	return r.readFile(path, format, model.VariantSchema())
}

// readFile snapshots the current options and hands plan construction to the
// session. The copy keeps later Option calls from retroactively changing
// handles that already exist.
func (r *Reader) readFile(path string, format FileFormat, schema Schema) (*DataFrame, error) {
	return r.session.readFile(path, format, r.snapshotOptions(), schema)
}

// snapshotOptions returns an independent copy of the option map.
func (r *Reader) snapshotOptions() map[string]string {
	snapshot := make(map[string]string, len(r.options))
	for k, v := range r.options {
		snapshot[k] = v
	}
	return snapshot
}
