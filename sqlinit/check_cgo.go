// [pg_query.Parse] requires CGO to compile and call https://github.com/pganalyze/libpg_query
//go:build cgo

package sqlinit

import (
	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// ParserAvailable reports whether Check parses SQL.
const ParserAvailable = true

// Check parses sql with the PostgreSQL parser.
func Check(sql string) error {
	_, err := pg_query.Parse(sql)
	return err
}
