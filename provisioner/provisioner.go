package provisioner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ruteri/pgtls-bootstrap/cryptoutils"
	"github.com/ruteri/pgtls-bootstrap/interfaces"
	"github.com/ruteri/pgtls-bootstrap/toolchain"
)

// Result summarizes a successful run.
type Result struct {
	CertPath string
	KeyPath  string
	DataDir  string

	// CertificateGenerated is false when an existing pair was kept.
	CertificateGenerated bool

	// NotAfter is the certificate expiry, zero when it could not be read.
	NotAfter time.Time

	PGConfWritten  bool
	InitSQLWritten bool
}

// Provisioner runs the provisioning steps for one Config.
type Provisioner struct {
	cfg       Config
	generator interfaces.CertificateGenerator
	fs        interfaces.PrivilegedFS
	lookPath  toolchain.LookPathFunc
	log       *slog.Logger
}

// New creates a Provisioner after validating cfg.
func New(cfg Config, generator interfaces.CertificateGenerator, fs interfaces.PrivilegedFS, log *slog.Logger) (*Provisioner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Provisioner{
		cfg:       cfg,
		generator: generator,
		fs:        fs,
		log:       log,
	}, nil
}

// WithLookPath replaces the PATH lookup used by the dependency check.
func (p *Provisioner) WithLookPath(lookPath toolchain.LookPathFunc) *Provisioner {
	p.lookPath = lookPath
	return p
}

// NewGenerator returns the certificate generator registered under name.
func NewGenerator(name string, runner interfaces.CommandRunner, log *slog.Logger) (interfaces.CertificateGenerator, error) {
	switch name {
	case GeneratorOpenSSL:
		return cryptoutils.NewOpenSSLGenerator(runner, log), nil
	case GeneratorNative:
		return cryptoutils.NewNativeGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: unknown certificate generator %q", interfaces.ErrInvalidConfig, name)
	}
}

// Run executes all provisioning steps in order and stops at the first error.
func (p *Provisioner) Run(ctx context.Context) (Result, error) {
	req := p.cfg.CertificateRequest()
	result := Result{
		CertPath: req.CertPath,
		KeyPath:  req.KeyPath,
		DataDir:  p.cfg.DataDir,
	}

	p.log.Debug("Starting provisioning",
		"certDir", p.cfg.CertDir,
		"dataDir", p.cfg.DataDir,
		"owner", p.cfg.Ownership().String(),
		"generator", p.generator.Name(),
	)

	if err := p.checkDependencies(); err != nil {
		return result, err
	}

	// Rendered before any mutation so a bad script cannot leave a half
	// provisioned tree behind.
	extras, err := p.renderExtras()
	if err != nil {
		return result, err
	}

	if err := p.prepareDirectories(ctx); err != nil {
		return result, err
	}

	generated, err := p.provisionCertificate(ctx, req)
	if err != nil {
		return result, err
	}
	result.CertificateGenerated = generated
	result.NotAfter = p.certificateExpiry(req.CertPath)

	written, err := p.writeExtras(extras)
	if err != nil {
		return result, err
	}
	result.PGConfWritten = written[p.cfg.PGConfFile]
	result.InitSQLWritten = written[p.cfg.InitSQLFile]

	if err := p.enforceOwnership(ctx, req, extras); err != nil {
		return result, err
	}

	return result, nil
}

func (p *Provisioner) certificateExpiry(certPath string) time.Time {
	cert, err := cryptoutils.LoadCertificate(certPath)
	if err != nil {
		p.log.Warn("Could not parse certificate", "path", certPath, "err", err)
		return time.Time{}
	}

	if time.Now().After(cert.NotAfter) {
		p.log.Warn("Certificate has expired, delete it to regenerate", "path", certPath, "notAfter", cert.NotAfter)
	}
	return cert.NotAfter
}
