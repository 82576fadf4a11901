package frostql

import (
	"context"
)

// DataFrame is a lazy tabular result handle: an unexecuted reference to a
// computation that runs on the remote engine only when a triggering action
// (Collect, Count, CollectArrow) is invoked. The plan inside it is frozen;
// reconfiguring the Reader that produced it has no effect on this handle.
type DataFrame struct {
	session *Session
	plan    *plan
}

// Schema returns a copy of the handle's column schema: the explicit field
// list for CSV reads, the single $1 variant column for semi-structured
// reads, or nil when the columns are only known to the remote engine
// (table references and raw SQL).
func (df *DataFrame) Schema() Schema {
	return df.plan.schema.Clone()
}

// SQL returns the query text the triggering actions will send to the
// remote engine.
func (df *DataFrame) SQL() string {
	return df.plan.SQL()
}

// Namespace returns the fully-qualified database/schema context frozen
// into the handle at construction time.
func (df *DataFrame) Namespace() string {
	return df.plan.namespace
}

// Limit returns a new DataFrame that reads at most n rows. The receiver is
// unchanged.
func (df *DataFrame) Limit(n int64) *DataFrame {
	limited := df.plan.clone()
	limited.limit = n
	limited.hasLimit = true
	return &DataFrame{session: df.session, plan: limited}
}

// Collect triggers the plan on the remote engine and returns all result
// rows. Errors from the remote engine propagate unchanged.
func (df *DataFrame) Collect(ctx context.Context) ([]Row, error) {
	rows, err := df.session.exec.QueryContext(ctx, df.plan.SQL())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var collected []Row
	for rows.Next() {
		values := make(Row, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		collected = append(collected, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return collected, nil
}

// Count triggers the plan wrapped in a COUNT(*) and returns the number of
// rows it would produce.
func (df *DataFrame) Count(ctx context.Context) (int64, error) {
	query := "SELECT COUNT(*) FROM (" + df.plan.SQL() + ")"
	rows, err := df.session.exec.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer func() { _ = rows.Close() }()

	var count int64
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
