// Package model provides domain model for frostql
package model

// FileFormat represents the file formats the remote engine can read from a
// stage.
type FileFormat int

const (
	// FormatCSV represents CSV file format
	FormatCSV FileFormat = iota
	// FormatJSON represents JSON file format
	FormatJSON
	// FormatAvro represents Avro file format
	FormatAvro
	// FormatParquet represents Parquet file format
	FormatParquet
	// FormatORC represents ORC file format
	FormatORC
	// FormatXML represents XML file format
	FormatXML
)

// String returns the upper-case format tag embedded in generated SQL
func (f FileFormat) String() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatJSON:
		return "JSON"
	case FormatAvro:
		return "AVRO"
	case FormatParquet:
		return "PARQUET"
	case FormatORC:
		return "ORC"
	case FormatXML:
		return "XML"
	default:
		return "CSV"
	}
}

// SemiStructured reports whether the format exposes records through a single
// variant column instead of a user-supplied schema.
func (f FileFormat) SemiStructured() bool {
	return f != FormatCSV
}

// CompressionType represents the compression applied to a staged file before
// upload.
type CompressionType int

const (
	// CompressionNone represents no compression
	CompressionNone CompressionType = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD
)

// String returns the SOURCE_COMPRESSION token for the compression type
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "NONE"
	case CompressionGZ:
		return "GZIP"
	case CompressionXZ:
		return "XZ"
	case CompressionZSTD:
		return "ZSTD"
	default:
		return "NONE"
	}
}

// Extension returns the file extension for the compression type
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGZ:
		return ".gz"
	case CompressionXZ:
		return ".xz"
	case CompressionZSTD:
		return ".zst"
	default:
		return ""
	}
}
