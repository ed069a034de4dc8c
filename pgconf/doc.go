// Package pgconf renders the PostgreSQL parameters that point the server at
// the provisioned certificate and key.
//
// The parameter names (ssl, ssl_cert_file, ssl_key_file) and the file names
// (cert.pem, key.pem) are the integration contract with the container; only
// the mount directory is configurable.
package pgconf
