package sqlinit

import "strings"

// QuoteIdentifier quotes an "identifier" (e.g. a role or database name) to be
// used as part of an SQL statement.
//
// Any double quotes in identifier will be escaped. The quoted identifier will
// be case-sensitive when used in a query. If the input string contains a zero
// byte, the result will be truncated immediately before it.
func QuoteIdentifier(identifier string) string {
	if end := strings.IndexRune(identifier, 0); end > -1 {
		identifier = identifier[:end]
	}

	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}

// QuoteLiteral quotes a 'literal' to be used in statements that do not accept
// parameters, such as CREATE ROLE ... PASSWORD.
//
// Single quotes are doubled. When the literal contains backslashes they are
// doubled too and the PostgreSQL E'' escape string syntax is used, matching
// libpq's PQescapeStringInternal.
func QuoteLiteral(literal string) string {
	literal = strings.ReplaceAll(literal, `'`, `''`)
	if strings.Contains(literal, `\`) {
		return ` E'` + strings.ReplaceAll(literal, `\`, `\\`) + `'`
	}
	return `'` + literal + `'`
}
