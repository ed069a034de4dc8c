package interfaces

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipString(t *testing.T) {
	assert.Equal(t, "70:70", Ownership{UID: 70, GID: 70}.String())
	assert.Equal(t, "0:1000", Ownership{UID: 0, GID: 1000}.String())
}

func TestNewCertificateRequest(t *testing.T) {
	req := NewCertificateRequest("certs", "/CN=db", "DNS:localhost", 365)

	assert.Equal(t, filepath.Join("certs", "cert.pem"), req.CertPath)
	assert.Equal(t, filepath.Join("certs", "key.pem"), req.KeyPath)
	require.NoError(t, req.Validate())
}

func TestCertificateRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *CertificateRequest)
	}{
		{
			name:   "empty subject",
			modify: func(r *CertificateRequest) { r.Subject = "" },
		},
		{
			name:   "zero days",
			modify: func(r *CertificateRequest) { r.Days = 0 },
		},
		{
			name:   "negative days",
			modify: func(r *CertificateRequest) { r.Days = -1 },
		},
		{
			name:   "expiry past year 9999",
			modify: func(r *CertificateRequest) { r.Days = 3_000_000 },
		},
		{
			name:   "missing key path",
			modify: func(r *CertificateRequest) { r.KeyPath = "" },
		},
		{
			name:   "same paths",
			modify: func(r *CertificateRequest) { r.KeyPath = r.CertPath },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewCertificateRequest("certs", "/CN=db", "", 1)
			tt.modify(&req)
			assert.ErrorIs(t, req.Validate(), ErrInvalidConfig)
		})
	}
}

func TestCertificateRequestValidateAtExpiryLimit(t *testing.T) {
	now := time.Date(9999, time.December, 1, 0, 0, 0, 0, time.UTC)
	req := NewCertificateRequest("certs", "/CN=db", "", 30)
	require.NoError(t, req.ValidateAt(now))

	req.Days = 31
	assert.ErrorIs(t, req.ValidateAt(now), ErrInvalidConfig)

	req.Days = 110000
	require.NoError(t, req.ValidateAt(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)))
}
