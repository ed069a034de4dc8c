package cryptoutils

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/miekg/dns"
	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// SubjectAltNames holds the parsed entries of an OpenSSL subjectAltName value.
type SubjectAltNames struct {
	DNSNames       []string
	IPAddresses    []net.IP
	EmailAddresses []string
	URIs           []*url.URL
}

// ParseSubjectAltName parses a comma-separated OpenSSL subjectAltName value
// such as "DNS:localhost,IP:127.0.0.1". Supported entry types are DNS, IP,
// email and URI. DNS names must be valid domain names, optionally with a
// leading "*." wildcard label. An empty value yields no entries.
func ParseSubjectAltName(value string) (SubjectAltNames, error) {
	var sans SubjectAltNames
	if strings.TrimSpace(value) == "" {
		return sans, nil
	}

	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		kind, v, ok := strings.Cut(entry, ":")
		if !ok || v == "" {
			return SubjectAltNames{}, fmt.Errorf("%w: malformed subjectAltName entry %q", interfaces.ErrInvalidConfig, entry)
		}

		switch strings.ToUpper(strings.TrimSpace(kind)) {
		case "DNS":
			if !validDNSName(v) {
				return SubjectAltNames{}, fmt.Errorf("%w: invalid DNS name %q", interfaces.ErrInvalidConfig, v)
			}
			sans.DNSNames = append(sans.DNSNames, v)
		case "IP":
			ip := net.ParseIP(v)
			if ip == nil {
				return SubjectAltNames{}, fmt.Errorf("%w: invalid IP address %q", interfaces.ErrInvalidConfig, v)
			}
			sans.IPAddresses = append(sans.IPAddresses, ip)
		case "EMAIL":
			if !strings.Contains(v, "@") {
				return SubjectAltNames{}, fmt.Errorf("%w: invalid email address %q", interfaces.ErrInvalidConfig, v)
			}
			sans.EmailAddresses = append(sans.EmailAddresses, v)
		case "URI":
			u, err := url.Parse(v)
			if err != nil || u.Scheme == "" {
				return SubjectAltNames{}, fmt.Errorf("%w: invalid URI %q", interfaces.ErrInvalidConfig, v)
			}
			sans.URIs = append(sans.URIs, u)
		default:
			return SubjectAltNames{}, fmt.Errorf("%w: unsupported subjectAltName type %q", interfaces.ErrInvalidConfig, kind)
		}
	}

	return sans, nil
}

// Empty reports whether no entries are present.
func (s SubjectAltNames) Empty() bool {
	return len(s.DNSNames) == 0 && len(s.IPAddresses) == 0 && len(s.EmailAddresses) == 0 && len(s.URIs) == 0
}

// String renders the entries back into OpenSSL form. Entries are grouped by
// type in the order DNS, IP, email, URI.
func (s SubjectAltNames) String() string {
	var parts []string
	for _, name := range s.DNSNames {
		parts = append(parts, "DNS:"+name)
	}
	for _, ip := range s.IPAddresses {
		parts = append(parts, "IP:"+ip.String())
	}
	for _, email := range s.EmailAddresses {
		parts = append(parts, "email:"+email)
	}
	for _, u := range s.URIs {
		parts = append(parts, "URI:"+u.String())
	}
	return strings.Join(parts, ",")
}

func validDNSName(name string) bool {
	name = strings.TrimPrefix(name, "*.")
	if name == "" || strings.ContainsAny(name, " *,") {
		return false
	}
	_, ok := dns.IsDomainName(name)
	return ok
}
