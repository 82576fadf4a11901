package frostql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/frostql/frostql/domain/model"
)

// planKind discriminates the source a plan reads from.
type planKind int

const (
	// planFileRead reads staged files through the remote engine's readers
	planFileRead planKind = iota
	// planTableRef reads an existing table
	planTableRef
	// planRaw wraps caller-supplied query text
	planRaw
)

// plan is an unexecuted query description. Everything inside it is frozen
// at construction time: mutating the Reader that produced it never changes
// a plan that already exists.
type plan struct {
	kind      planKind
	path      string
	format    model.FileFormat
	options   map[string]string
	namespace string
	schema    model.Schema
	table     string
	text      string
	limit     int64
	hasLimit  bool
}

// clone returns a deep copy so derived handles never share mutable state.
func (p *plan) clone() *plan {
	cloned := *p
	cloned.schema = p.schema.Clone()
	if p.options != nil {
		cloned.options = make(map[string]string, len(p.options))
		for k, v := range p.options {
			cloned.options[k] = v
		}
	}
	return &cloned
}

// SQL renders the plan as a single SELECT statement in the warehouse
// dialect. Option values were serialized at Option() time and embed as-is.
func (p *plan) SQL() string {
	var sb strings.Builder

	switch p.kind {
	case planTableRef:
		sb.WriteString("SELECT * FROM ")
		sb.WriteString(p.table)
	case planRaw:
		sb.WriteString(p.text)
	default:
		sb.WriteString("SELECT ")
		sb.WriteString(p.projection())
		sb.WriteString(" FROM ")
		sb.WriteString(QuoteLiteral(p.path))
		sb.WriteString(" (FILE_FORMAT => (")
		sb.WriteString(p.fileFormatClause())
		sb.WriteString("))")
	}

	if p.hasLimit {
		fmt.Fprintf(&sb, " LIMIT %d", p.limit)
	}
	return sb.String()
}

// projection renders positional casts for every schema field, e.g.
// $1::INTEGER AS "a", $2::STRING AS "b". Semi-structured reads carry the
// single $1 variant field and render as $1::VARIANT AS "$1".
func (p *plan) projection() string {
	parts := make([]string, 0, len(p.schema))
	for i, field := range p.schema {
		parts = append(parts, fmt.Sprintf("$%d::%s AS %s", i+1, field.Type, quoteIdent(field.Name)))
	}
	return strings.Join(parts, ", ")
}

// fileFormatClause renders the format tag followed by the frozen option
// snapshot. Keys are sorted so generated SQL is deterministic.
func (p *plan) fileFormatClause() string {
	parts := make([]string, 0, len(p.options)+1)
	parts = append(parts, "TYPE => "+p.format.String())

	keys := make([]string, 0, len(p.options))
	for k := range p.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+" => "+p.options[k])
	}
	return strings.Join(parts, ", ")
}
