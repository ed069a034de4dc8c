package cryptoutils

import (
	"testing"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubject(t *testing.T) {
	name, err := ParseSubject("/CN=db")
	require.NoError(t, err)
	assert.Equal(t, "db", name.CommonName)
	assert.Empty(t, name.Organization)

	name, err = ParseSubject(`/C=US/ST=CA/L=San Francisco/O=Example/OU=Platform/CN=db.example.com/emailAddress=ops@example.com/DC=example`)
	require.NoError(t, err)
	assert.Equal(t, "db.example.com", name.CommonName)
	assert.Equal(t, []string{"US"}, name.Country)
	assert.Equal(t, []string{"CA"}, name.Province)
	assert.Equal(t, []string{"San Francisco"}, name.Locality)
	assert.Equal(t, []string{"Example"}, name.Organization)
	assert.Equal(t, []string{"Platform"}, name.OrganizationalUnit)
	require.Len(t, name.ExtraNames, 2)
	assert.True(t, name.ExtraNames[0].Type.Equal(oidEmailAddress))
	assert.Equal(t, "ops@example.com", name.ExtraNames[0].Value)
	assert.True(t, name.ExtraNames[1].Type.Equal(oidDomainComponent))
}

func TestParseSubjectEscapes(t *testing.T) {
	name, err := ParseSubject(`/O=A\/B/cn=db`)
	require.NoError(t, err)
	assert.Equal(t, []string{"A/B"}, name.Organization)
	assert.Equal(t, "db", name.CommonName)
}

func TestParseSubjectInvalid(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{name: "empty", subject: ""},
		{name: "no leading slash", subject: "CN=db"},
		{name: "only slash", subject: "/"},
		{name: "empty value", subject: "/CN="},
		{name: "missing equals", subject: "/CN"},
		{name: "empty component", subject: "/CN=db//O=x"},
		{name: "unknown attribute", subject: "/XX=db"},
		{name: "dangling escape", subject: `/CN=db\`},
		{name: "repeated CN", subject: "/CN=a/CN=b"},
		{name: "repeated CN mixed case", subject: "/CN=a/commonName=b"},
		{name: "repeated serialNumber", subject: "/CN=db/serialNumber=1/serialNumber=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubject(tt.subject)
			assert.ErrorIs(t, err, interfaces.ErrInvalidConfig)
		})
	}
}

func TestParseSubjectRepeatedMultiValued(t *testing.T) {
	name, err := ParseSubject("/CN=db/OU=a/OU=b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, name.OrganizationalUnit)
}
