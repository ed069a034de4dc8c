package cryptoutils

import (
	"net"
	"testing"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubjectAltName(t *testing.T) {
	sans, err := ParseSubjectAltName("DNS:localhost, IP:127.0.0.1,DNS:*.db.internal,email:admin@example.com,URI:spiffe://example/db,IP:::1")
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost", "*.db.internal"}, sans.DNSNames)
	require.Len(t, sans.IPAddresses, 2)
	assert.True(t, sans.IPAddresses[0].Equal(net.ParseIP("127.0.0.1")))
	assert.True(t, sans.IPAddresses[1].Equal(net.IPv6loopback))
	assert.Equal(t, []string{"admin@example.com"}, sans.EmailAddresses)
	require.Len(t, sans.URIs, 1)
	assert.Equal(t, "spiffe://example/db", sans.URIs[0].String())
	assert.False(t, sans.Empty())

	assert.Equal(t,
		"DNS:localhost,DNS:*.db.internal,IP:127.0.0.1,IP:::1,email:admin@example.com,URI:spiffe://example/db",
		sans.String())
}

func TestParseSubjectAltNameDefault(t *testing.T) {
	sans, err := ParseSubjectAltName("DNS:localhost,IP:127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "DNS:localhost,IP:127.0.0.1", sans.String())
}

func TestParseSubjectAltNameEmpty(t *testing.T) {
	sans, err := ParseSubjectAltName("  ")
	require.NoError(t, err)
	assert.True(t, sans.Empty())
	assert.Equal(t, "", sans.String())
}

func TestParseSubjectAltNameInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "missing type", value: "localhost"},
		{name: "missing value", value: "DNS:"},
		{name: "unknown type", value: "RID:1.2.3"},
		{name: "bad ip", value: "IP:300.1.1.1"},
		{name: "bad dns", value: "DNS:exa mple.com"},
		{name: "empty label", value: "DNS:example..com"},
		{name: "bad email", value: "email:nobody"},
		{name: "relative uri", value: "URI:just/a/path"},
		{name: "trailing comma", value: "DNS:localhost,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubjectAltName(tt.value)
			assert.ErrorIs(t, err, interfaces.ErrInvalidConfig)
		})
	}
}
