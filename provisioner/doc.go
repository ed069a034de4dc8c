// Package provisioner prepares the on-disk layout a PostgreSQL container
// needs to serve TLS: a private data directory, a certificate directory
// holding a self-signed cert.pem and key.pem, and optional configuration
// and init script files, all owned by the database runtime user.
//
// A run is a fixed sequence of steps:
//
//	dependencies -> directories -> certificate -> extras -> ownership
//
// Every step is idempotent, so an interrupted run is repaired by running
// again. Any step failure aborts the run; nothing is rolled back.
package provisioner
