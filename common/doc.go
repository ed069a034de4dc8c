// Package common holds process-wide helpers shared by the binaries: logger
// construction, the coloured console handler and the build version.
//
// Status lines printed to a terminal look like:
//
//	[info] Preparing directories data=data certs=certs
//	[ok] Certificate generated path=certs/cert.pem
//	[warn] Could not set certificate directory permissions path=certs
//	[err] Provisioning failed err="missing dependency: openssl"
//
// When output is redirected the same records are written in logfmt, and in
// JSON when requested, so automation can parse them.
package common
