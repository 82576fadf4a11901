// Package frostql provides a client SDK for building lazy query plans
// against a remote analytical data warehouse.
//
// frostql is client-side convenience only: no parsing, no file I/O, and no
// query execution happen inside this package. A Session wraps an existing
// database/sql connection to the warehouse, a Reader accumulates file-format
// options and an optional explicit schema, and the terminal format methods
// produce an unexecuted DataFrame handle. The remote engine performs the
// actual file reading, schema inference, and execution when a triggering
// action such as Collect or Count is invoked on the handle.
//
// # Basic Usage
//
// Open a connection with your warehouse driver, wrap it in a Session, and
// use the fluent Reader to describe staged files:
//
//	db, err := sql.Open("warehouse", dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session, err := frostql.Connect(ctx, db)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	schema := frostql.NewSchema(
//	    frostql.Field{Name: "a", Type: frostql.DataTypeInteger},
//	    frostql.Field{Name: "b", Type: frostql.DataTypeString},
//	)
//	df, err := session.Read().
//	    Option("skip_header", frostql.Int(1)).
//	    Schema(schema).
//	    CSV("@mystage/users.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err := df.Collect(ctx)
//
// # Schema Rules
//
// CSV reads require an explicit schema set through Reader.Schema. All other
// formats (JSON, Avro, Parquet, ORC, XML) reject a user-supplied schema and
// expose the entire parsed record through a single $1 column of variant
// type, to be projected with path expressions by the caller.
//
// # Options
//
// Reader options take discriminated values built with Bool, Int, and String
// so that a boolean option and a string that merely looks like a boolean
// never collide. Keys are case-insensitive and stored upper-cased; the last
// write for a key wins. Serialized option values are safe for direct
// embedding in generated SQL.
//
// # Laziness
//
// A DataFrame is an unexecuted plan. Its option snapshot, schema, and
// namespace are frozen when the handle is constructed; mutating the Reader
// afterwards never changes handles it already produced.
package frostql
