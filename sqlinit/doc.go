// Package sqlinit renders the bootstrap SQL that creates the application role
// and database. The PostgreSQL image runs it from docker-entrypoint-initdb.d
// on first start.
//
// Names are quoted as identifiers and the password as a literal. When built
// with cgo the rendered script is additionally parsed with pg_query_go.
package sqlinit
