package provisioner

import (
	"fmt"
	"strings"

	"github.com/ruteri/pgtls-bootstrap/cryptoutils"
	"github.com/ruteri/pgtls-bootstrap/interfaces"
	"github.com/ruteri/pgtls-bootstrap/pgconf"
	"github.com/ruteri/pgtls-bootstrap/sqlinit"
)

// Generator names accepted by Config.Generator.
const (
	GeneratorOpenSSL = "openssl"
	GeneratorNative  = "native"
)

// Config holds everything a provisioning run needs. It is passed explicitly
// so tests can provision arbitrary layouts without touching the environment.
type Config struct {
	// UID and GID of the PostgreSQL runtime user inside the container.
	UID int
	GID int

	Subject string
	Days    int
	SAN     string

	CertDir string
	DataDir string

	// Generator is GeneratorOpenSSL or GeneratorNative.
	Generator string

	// AllowSudo permits single operations to be elevated via sudo.
	AllowSudo bool

	// StrictPermissions makes a failed cert directory chmod fatal instead
	// of a warning.
	StrictPermissions bool

	// PGConfFile, when set, receives a postgresql.conf snippet enabling TLS
	// with the certificate mounted at PGCertMount.
	PGConfFile  string
	PGCertMount string

	// InitSQLFile, when set, receives a script creating DBUser and DBName.
	InitSQLFile string
	DBUser      string
	DBPassword  string
	DBName      string
}

// DefaultConfig returns the configuration used by the official postgres
// alpine image layout.
func DefaultConfig() Config {
	return Config{
		UID:         70,
		GID:         70,
		Subject:     "/CN=db",
		Days:        36500,
		SAN:         "DNS:localhost,IP:127.0.0.1",
		CertDir:     "certs",
		DataDir:     "data",
		Generator:   GeneratorOpenSSL,
		AllowSudo:   true,
		PGCertMount: pgconf.DefaultCertMount,
	}
}

// Validate checks the configuration without touching the filesystem.
func (c Config) Validate() error {
	if c.UID < 0 || c.GID < 0 {
		return fmt.Errorf("%w: uid and gid must be non-negative, got %s", interfaces.ErrInvalidConfig, c.Ownership())
	}
	if c.CertDir == "" || c.DataDir == "" {
		return fmt.Errorf("%w: certificate and data directories are required", interfaces.ErrInvalidConfig)
	}

	if err := c.CertificateRequest().Validate(); err != nil {
		return err
	}
	if _, err := cryptoutils.ParseSubject(c.Subject); err != nil {
		return err
	}
	if _, err := cryptoutils.ParseSubjectAltName(c.SAN); err != nil {
		return err
	}

	switch c.Generator {
	case GeneratorOpenSSL, GeneratorNative:
	default:
		return fmt.Errorf("%w: unknown certificate generator %q", interfaces.ErrInvalidConfig, c.Generator)
	}

	if c.PGConfFile != "" && !strings.HasPrefix(c.PGCertMount, "/") {
		return fmt.Errorf("%w: certificate mount %q must be an absolute path", interfaces.ErrInvalidConfig, c.PGCertMount)
	}
	if c.InitSQLFile != "" {
		if err := c.InitScript().Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Ownership returns the owner applied to provisioned paths.
func (c Config) Ownership() interfaces.Ownership {
	return interfaces.Ownership{UID: c.UID, GID: c.GID}
}

// CertificateRequest returns the request for cert.pem and key.pem in CertDir.
func (c Config) CertificateRequest() interfaces.CertificateRequest {
	return interfaces.NewCertificateRequest(c.CertDir, c.Subject, c.SAN, c.Days)
}

// InitScript returns the SQL init script described by the DB fields.
func (c Config) InitScript() sqlinit.Script {
	return sqlinit.Script{
		User:     c.DBUser,
		Password: c.DBPassword,
		Database: c.DBName,
	}
}
