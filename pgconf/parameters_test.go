package pgconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTLSParameters(t *testing.T) {
	parameters := TLSParameters(DefaultCertMount)

	assert.Equal(t, map[string]string{
		"ssl":           "on",
		"ssl_cert_file": "/var/lib/postgresql/certs/cert.pem",
		"ssl_key_file":  "/var/lib/postgresql/certs/key.pem",
	}, parameters.AsMap())
}

func TestParameterSet(t *testing.T) {
	ps := NewParameterSet()
	ps.Add("SSL", "on")

	value, ok := ps.Get("ssl")
	assert.True(t, ok)
	assert.Equal(t, "on", value)

	_, ok = ps.Get("missing")
	assert.False(t, ok)

	copied := ps.AsMap()
	copied["ssl"] = "off"
	value, _ = ps.Get("ssl")
	assert.Equal(t, "on", value, "AsMap must return a copy")

	var nilSet *ParameterSet
	assert.Nil(t, nilSet.AsMap())
}

func TestRender(t *testing.T) {
	ps := TLSParameters("/certs")
	ps.Add("application_name", "it's")

	assert.Equal(t, `# Generated by pgtls-bootstrap. Include from postgresql.conf.
application_name = 'it''s'
ssl = 'on'
ssl_cert_file = '/certs/cert.pem'
ssl_key_file = '/certs/key.pem'
`, ps.Render())
}
