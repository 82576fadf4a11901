package frostql

import (
	"github.com/frostql/frostql/domain/model"
)

// Type aliases for the domain model package
type (
	// Schema is an ordered sequence of field descriptors
	Schema = model.Schema
	// Field is a single column descriptor
	Field = model.Field
	// DataType is the warehouse column type
	DataType = model.DataType
	// FileFormat is a stage file format tag
	FileFormat = model.FileFormat
	// CompressionType is a client-side compression choice for staged uploads
	CompressionType = model.CompressionType
)

// Re-export constants for easier use
const (
	// DataTypeString represents a variable-length text column
	DataTypeString = model.DataTypeString
	// DataTypeInteger represents a 64-bit integer column
	DataTypeInteger = model.DataTypeInteger
	// DataTypeFloat represents a double-precision floating point column
	DataTypeFloat = model.DataTypeFloat
	// DataTypeBoolean represents a boolean column
	DataTypeBoolean = model.DataTypeBoolean
	// DataTypeBinary represents a binary column
	DataTypeBinary = model.DataTypeBinary
	// DataTypeDate represents a calendar date column
	DataTypeDate = model.DataTypeDate
	// DataTypeTimestamp represents a timestamp column
	DataTypeTimestamp = model.DataTypeTimestamp
	// DataTypeVariant represents a semi-structured variant column
	DataTypeVariant = model.DataTypeVariant

	// FormatCSV represents CSV file format
	FormatCSV = model.FormatCSV
	// FormatJSON represents JSON file format
	FormatJSON = model.FormatJSON
	// FormatAvro represents Avro file format
	FormatAvro = model.FormatAvro
	// FormatParquet represents Parquet file format
	FormatParquet = model.FormatParquet
	// FormatORC represents ORC file format
	FormatORC = model.FormatORC
	// FormatXML represents XML file format
	FormatXML = model.FormatXML

	// CompressionNone represents no compression
	CompressionNone = model.CompressionNone
	// CompressionGZ represents gzip compression
	CompressionGZ = model.CompressionGZ
	// CompressionXZ represents xz compression
	CompressionXZ = model.CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD = model.CompressionZSTD
)

// NewSchema creates a new Schema from fields
var NewSchema = model.NewSchema

// VariantSchema returns the fixed single-column variant schema
var VariantSchema = model.VariantSchema

// Row represents one result row scanned from a triggered plan.
type Row []any
