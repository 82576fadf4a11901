package frostql

import "strings"

// QuoteLiteral wraps value in single quotes, doubling any embedded single
// quote, producing a string literal safe for direct embedding in generated
// SQL.
func QuoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// quoteIdent wraps name in double quotes, doubling any embedded double
// quote. Used for column aliases in generated projections.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
