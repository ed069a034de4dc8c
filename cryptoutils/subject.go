package cryptoutils

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strings"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

var (
	oidEmailAddress    = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}
	oidDomainComponent = asn1.ObjectIdentifier{0, 9, 2342, 19200300, 100, 1, 25}
)

// ParseSubject parses an OpenSSL -subj style distinguished name such as
// "/CN=db/O=Example/C=US". A backslash escapes the next character, so
// "\/" is a literal slash inside a value. Attribute names are matched
// case-insensitively; CN, O, OU, C, ST, L, street, postalCode, serialNumber,
// emailAddress and DC are supported.
func ParseSubject(subject string) (pkix.Name, error) {
	var name pkix.Name

	if !strings.HasPrefix(subject, "/") {
		return name, fmt.Errorf("%w: subject %q must start with '/'", interfaces.ErrInvalidConfig, subject)
	}

	components, err := splitSubject(subject[1:])
	if err != nil {
		return name, err
	}
	if len(components) == 0 {
		return name, fmt.Errorf("%w: subject %q has no attributes", interfaces.ErrInvalidConfig, subject)
	}

	for _, component := range components {
		key, value, ok := strings.Cut(component, "=")
		if !ok || key == "" || value == "" {
			return name, fmt.Errorf("%w: malformed subject component %q", interfaces.ErrInvalidConfig, component)
		}

		switch strings.ToLower(key) {
		case "cn", "commonname":
			if name.CommonName != "" {
				return name, fmt.Errorf("%w: subject %q repeats CN", interfaces.ErrInvalidConfig, subject)
			}
			name.CommonName = value
		case "o":
			name.Organization = append(name.Organization, value)
		case "ou":
			name.OrganizationalUnit = append(name.OrganizationalUnit, value)
		case "c":
			name.Country = append(name.Country, value)
		case "st":
			name.Province = append(name.Province, value)
		case "l":
			name.Locality = append(name.Locality, value)
		case "street":
			name.StreetAddress = append(name.StreetAddress, value)
		case "postalcode":
			name.PostalCode = append(name.PostalCode, value)
		case "serialnumber":
			if name.SerialNumber != "" {
				return name, fmt.Errorf("%w: subject %q repeats serialNumber", interfaces.ErrInvalidConfig, subject)
			}
			name.SerialNumber = value
		case "emailaddress":
			name.ExtraNames = append(name.ExtraNames, pkix.AttributeTypeAndValue{Type: oidEmailAddress, Value: value})
		case "dc":
			name.ExtraNames = append(name.ExtraNames, pkix.AttributeTypeAndValue{Type: oidDomainComponent, Value: value})
		default:
			return name, fmt.Errorf("%w: unsupported subject attribute %q", interfaces.ErrInvalidConfig, key)
		}
	}

	return name, nil
}

func splitSubject(s string) ([]string, error) {
	var (
		components []string
		current    strings.Builder
		escaped    bool
	)

	for _, r := range s {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '/':
			components = append(components, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		return nil, fmt.Errorf("%w: subject ends with a dangling escape", interfaces.ErrInvalidConfig)
	}
	if current.Len() > 0 {
		components = append(components, current.String())
	}

	return components, nil
}
