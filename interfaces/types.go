// Package interfaces defines the core interfaces and types for the TLS
// bootstrap helper. It provides the contract between different components
// without implementation details.
package interfaces

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

// Fixed artifact names. PostgreSQL's ssl_cert_file and ssl_key_file point at
// these, so they must not change.
const (
	CertFileName = "cert.pem"
	KeyFileName  = "key.pem"
)

// Ownership is the numeric (uid, gid) pair applied to provisioned paths.
type Ownership struct {
	UID int
	GID int
}

// String returns the ownership in chown(1) "uid:gid" form.
func (o Ownership) String() string {
	return strconv.Itoa(o.UID) + ":" + strconv.Itoa(o.GID)
}

// CertificateRequest describes a self-signed certificate and the files its
// PEM-encoded certificate and private key are written to.
type CertificateRequest struct {
	// Subject in OpenSSL "/CN=db/O=example" form.
	Subject string

	// SubjectAltName in OpenSSL "DNS:localhost,IP:127.0.0.1" form.
	SubjectAltName string

	// Days is the validity period counted from generation time.
	Days int

	CertPath string
	KeyPath  string
}

// NewCertificateRequest creates a request writing cert.pem and key.pem into certDir.
func NewCertificateRequest(certDir, subject, san string, days int) CertificateRequest {
	return CertificateRequest{
		Subject:        subject,
		SubjectAltName: san,
		Days:           days,
		CertPath:       filepath.Join(certDir, CertFileName),
		KeyPath:        filepath.Join(certDir, KeyFileName),
	}
}

// MaxNotAfter is the latest expiry an X.509 GeneralizedTime can encode.
var MaxNotAfter = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// Validate checks the request fields that every generator relies on,
// with the validity period counted from the current time.
func (r CertificateRequest) Validate() error {
	return r.ValidateAt(time.Now())
}

// ValidateAt is Validate with the validity period counted from now.
func (r CertificateRequest) ValidateAt(now time.Time) error {
	if r.Subject == "" {
		return fmt.Errorf("%w: empty certificate subject", ErrInvalidConfig)
	}
	if r.Days <= 0 {
		return fmt.Errorf("%w: certificate validity must be positive, got %d days", ErrInvalidConfig, r.Days)
	}
	if maxDays := (MaxNotAfter.Unix() - now.Unix()) / (24 * 60 * 60); int64(r.Days) > maxDays {
		return fmt.Errorf("%w: certificate validity of %d days ends after %s", ErrInvalidConfig, r.Days, MaxNotAfter.Format(time.DateOnly))
	}
	if r.CertPath == "" || r.KeyPath == "" {
		return fmt.Errorf("%w: certificate and key paths are required", ErrInvalidConfig)
	}
	if filepath.Clean(r.CertPath) == filepath.Clean(r.KeyPath) {
		return fmt.Errorf("%w: certificate and key paths must differ", ErrInvalidConfig)
	}
	return nil
}
