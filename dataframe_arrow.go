package frostql

import (
	"context"
	"fmt"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
)

// CollectArrow triggers the plan and materializes the result as a single
// Arrow record, using the handle's schema to pick column types. The caller
// owns the record and must Release it. Handles without a known schema
// (table references and raw SQL) materialize every column as a string.
func (df *DataFrame) CollectArrow(ctx context.Context) (arrow.Record, error) {
	collected, err := df.Collect(ctx)
	if err != nil {
		return nil, err
	}

	schema := df.plan.schema
	if schema == nil {
		schema = stringSchemaFor(collected)
	}

	builder := array.NewRecordBuilder(memory.NewGoAllocator(), arrowSchema(schema))
	defer builder.Release()

	for _, row := range collected {
		for i, field := range schema {
			if i >= len(row) {
				builder.Field(i).AppendNull()
				continue
			}
			if err := appendValue(builder.Field(i), field, row[i]); err != nil {
				return nil, err
			}
		}
	}
	return builder.NewRecord(), nil
}

// stringSchemaFor derives an all-string schema from the width of the first
// collected row.
func stringSchemaFor(rows []Row) Schema {
	if len(rows) == 0 {
		return Schema{}
	}
	schema := make(Schema, len(rows[0]))
	for i := range schema {
		schema[i] = Field{Name: fmt.Sprintf("column%d", i+1), Type: DataTypeString}
	}
	return schema
}

// arrowSchema maps the handle schema onto Arrow field types. Variant
// columns surface as strings since the engine returns them as JSON text.
func arrowSchema(schema Schema) *arrow.Schema {
	fields := make([]arrow.Field, 0, len(schema))
	for _, field := range schema {
		fields = append(fields, arrow.Field{
			Name:     field.Name,
			Type:     arrowType(field.Type),
			Nullable: true,
		})
	}
	return arrow.NewSchema(fields, nil)
}

func arrowType(dt DataType) arrow.DataType {
	switch dt {
	case DataTypeInteger:
		return arrow.PrimitiveTypes.Int64
	case DataTypeFloat:
		return arrow.PrimitiveTypes.Float64
	case DataTypeBoolean:
		return arrow.FixedWidthTypes.Boolean
	case DataTypeBinary:
		return arrow.BinaryTypes.Binary
	case DataTypeDate:
		return arrow.FixedWidthTypes.Date32
	case DataTypeTimestamp:
		return &arrow.TimestampType{Unit: arrow.Microsecond}
	default:
		return arrow.BinaryTypes.String
	}
}

// appendValue appends one scanned database value to the column builder,
// converting the loose types database/sql produces into the Arrow column
// type.
func appendValue(builder array.Builder, field Field, value any) error {
	if value == nil {
		builder.AppendNull()
		return nil
	}

	switch b := builder.(type) {
	case *array.Int64Builder:
		switch v := value.(type) {
		case int64:
			b.Append(v)
		case int:
			b.Append(int64(v))
		case float64:
			b.Append(int64(v))
		default:
			return convertError(field, value)
		}
	case *array.Float64Builder:
		switch v := value.(type) {
		case float64:
			b.Append(v)
		case int64:
			b.Append(float64(v))
		default:
			return convertError(field, value)
		}
	case *array.BooleanBuilder:
		switch v := value.(type) {
		case bool:
			b.Append(v)
		case int64:
			b.Append(v != 0)
		default:
			return convertError(field, value)
		}
	case *array.BinaryBuilder:
		switch v := value.(type) {
		case []byte:
			b.Append(v)
		case string:
			b.Append([]byte(v))
		default:
			return convertError(field, value)
		}
	case *array.Date32Builder:
		v, ok := value.(time.Time)
		if !ok {
			return convertError(field, value)
		}
		b.Append(arrow.Date32FromTime(v))
	case *array.TimestampBuilder:
		v, ok := value.(time.Time)
		if !ok {
			return convertError(field, value)
		}
		b.Append(arrow.Timestamp(v.UnixMicro()))
	case *array.StringBuilder:
		switch v := value.(type) {
		case string:
			b.Append(v)
		case []byte:
			b.Append(string(v))
		default:
			b.Append(fmt.Sprint(v))
		}
	default:
		return convertError(field, value)
	}
	return nil
}

func convertError(field Field, value any) error {
	return fmt.Errorf("frostql: cannot convert %T to %s for column %q", value, field.Type, field.Name)
}
