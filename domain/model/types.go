// Package model provides domain model for frostql
package model

// DataType represents the warehouse column type used in casts and schema
// declarations.
type DataType int

const (
	// DataTypeString represents a variable-length text column
	DataTypeString DataType = iota
	// DataTypeInteger represents a 64-bit integer column
	DataTypeInteger
	// DataTypeFloat represents a double-precision floating point column
	DataTypeFloat
	// DataTypeBoolean represents a boolean column
	DataTypeBoolean
	// DataTypeBinary represents a binary column
	DataTypeBinary
	// DataTypeDate represents a calendar date column
	DataTypeDate
	// DataTypeTimestamp represents a timestamp column
	DataTypeTimestamp
	// DataTypeVariant represents a semi-structured column holding arbitrary
	// nested data, queried via path expressions
	DataTypeVariant
)

// String returns the SQL type name for the data type
func (dt DataType) String() string {
	switch dt {
	case DataTypeString:
		return "STRING"
	case DataTypeInteger:
		return "INTEGER"
	case DataTypeFloat:
		return "FLOAT"
	case DataTypeBoolean:
		return "BOOLEAN"
	case DataTypeBinary:
		return "BINARY"
	case DataTypeDate:
		return "DATE"
	case DataTypeTimestamp:
		return "TIMESTAMP"
	case DataTypeVariant:
		return "VARIANT"
	default:
		return "STRING"
	}
}

// Field represents a single column descriptor with a name and a semantic
// type. Field names are stored verbatim; the remote engine owns name and
// type validation.
type Field struct {
	// Name is the column name
	Name string
	// Type is the column type
	Type DataType
}

// Schema is an ordered sequence of field descriptors.
type Schema []Field

// NewSchema creates a new Schema from fields.
func NewSchema(fields ...Field) Schema {
	return Schema(fields)
}

// VariantColumnName is the synthetic column through which the remote engine
// exposes an entire semi-structured record.
const VariantColumnName = "$1"

// VariantSchema returns the fixed schema used for semi-structured reads:
// a single $1 column of variant type.
func VariantSchema() Schema {
	return Schema{{Name: VariantColumnName, Type: DataTypeVariant}}
}

// Clone returns an independent copy of the schema.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	cloned := make(Schema, len(s))
	copy(cloned, s)
	return cloned
}

// Equal compares two schemas field by field.
func (s Schema) Equal(other Schema) bool {
	if len(s) != len(other) {
		return false
	}
	for i, f := range s {
		if f != other[i] {
			return false
		}
	}
	return true
}
