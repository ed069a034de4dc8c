package pgconf

import (
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// DefaultCertMount is where the certificate directory is mounted inside the
// PostgreSQL container.
const DefaultCertMount = "/var/lib/postgresql/certs"

// TLSParameters returns the parameters that enable TLS using the provisioned
// files mounted at certMount.
func TLSParameters(certMount string) *ParameterSet {
	parameters := NewParameterSet()

	// https://www.postgresql.org/docs/current/ssl-tcp.html
	parameters.Add("ssl", "on")
	parameters.Add("ssl_cert_file", path.Join(certMount, interfaces.CertFileName))
	parameters.Add("ssl_key_file", path.Join(certMount, interfaces.KeyFileName))

	return parameters
}

// ParameterSet is a collection of PostgreSQL parameters.
// - https://www.postgresql.org/docs/current/config-setting.html
type ParameterSet struct {
	values map[string]string
}

// NewParameterSet returns an empty ParameterSet.
func NewParameterSet() *ParameterSet {
	return &ParameterSet{
		values: make(map[string]string),
	}
}

// AsMap returns a copy of ps as a map.
func (ps *ParameterSet) AsMap() map[string]string {
	if ps == nil {
		return nil
	}

	return maps.Clone(ps.values)
}

// Add sets parameter name to value.
func (ps *ParameterSet) Add(name, value string) {
	ps.values[ps.normalize(name)] = value
}

// Get returns the value of parameter name and whether or not it was present in ps.
func (ps *ParameterSet) Get(name string) (string, bool) {
	value, ok := ps.values[ps.normalize(name)]
	return value, ok
}

// Render returns ps in postgresql.conf syntax, one parameter per line sorted
// by name. Values are always quoted.
func (ps *ParameterSet) Render() string {
	var b strings.Builder
	b.WriteString("# Generated by pgtls-bootstrap. Include from postgresql.conf.\n")

	for _, name := range slices.Sorted(maps.Keys(ps.values)) {
		b.WriteString(name)
		b.WriteString(" = ")
		b.WriteString(quoteValue(ps.values[name]))
		b.WriteByte('\n')
	}
	return b.String()
}

func (*ParameterSet) normalize(name string) string {
	// All parameter names are case-insensitive.
	// -- https://www.postgresql.org/docs/current/config-setting.html
	return strings.ToLower(name)
}

// quoteValue wraps value in single quotes, doubling embedded quotes as
// postgresql.conf requires.
func quoteValue(value string) string {
	return `'` + strings.ReplaceAll(value, `'`, `''`) + `'`
}
