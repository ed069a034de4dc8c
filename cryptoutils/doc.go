// Package cryptoutils produces the self-signed TLS material mounted into the
// PostgreSQL container.
//
// Two interfaces.CertificateGenerator implementations are provided:
//
//   - OpenSSLGenerator shells out to "openssl req -x509" with an RSA-4096 key
//     and SHA-256 signature, running under a 077 umask so the key file is
//     never group or world readable.
//   - NativeGenerator builds the same certificate with crypto/x509 and writes
//     the key with an explicit 0600 mode. It has no external dependencies.
//
// Both accept OpenSSL-style inputs: a "/CN=db/O=example" subject parsed by
// ParseSubject and a "DNS:localhost,IP:127.0.0.1" subjectAltName parsed by
// ParseSubjectAltName.
package cryptoutils
