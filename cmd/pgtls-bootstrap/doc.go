// Package main (cmd/pgtls-bootstrap) prepares a local PostgreSQL development
// environment for TLS.
//
// It creates the data directory with mode 0700, creates the certificate
// directory, generates a self-signed RSA-4096 certificate and key when the
// pair is not already present, and hands everything to the uid/gid the
// PostgreSQL container runs as (70:70 for the alpine images). Ownership
// changes that need root are elevated individually with sudo.
//
// Every option can also be set through the environment:
//
//	--uid                 PG_UID              70
//	--gid                 PG_GID              70
//	--subject             CERT_SUBJECT        /CN=db
//	--days                CERT_DAYS           36500
//	--cert-dir            CERT_DIR            certs
//	--data-dir            DATA_DIR            data
//	--san                 CERT_SAN            DNS:localhost,IP:127.0.0.1
//	--generator           CERT_GENERATOR      openssl
//	--no-sudo             NO_SUDO             false
//	--strict-permissions  STRICT_PERMISSIONS  false
//	--pg-conf-file        PG_CONF_FILE
//	--pg-cert-mount       PG_CERT_MOUNT       /var/lib/postgresql/certs
//	--init-sql-file       INIT_SQL_FILE
//	--db-user             DB_USER
//	--db-password         DB_PASSWORD
//	--db-name             DB_NAME
//
// Running it again is safe: an existing certificate pair is kept and only
// modes and ownership are re-applied.
//
// Example:
//
//	pgtls-bootstrap --san DNS:localhost,DNS:db,IP:127.0.0.1 \
//	    --pg-conf-file conf.d/ssl.conf
package main
