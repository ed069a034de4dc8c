package cryptoutils

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
	"github.com/ruteri/pgtls-bootstrap/toolchain"
)

// OpenSSLBinary is the executable invoked by OpenSSLGenerator.
const OpenSSLBinary = "openssl"

// OpenSSLGenerator creates self-signed certificates with "openssl req -x509".
type OpenSSLGenerator struct {
	runner interfaces.CommandRunner
	log    *slog.Logger
}

// NewOpenSSLGenerator creates a generator running openssl through runner.
func NewOpenSSLGenerator(runner interfaces.CommandRunner, log *slog.Logger) *OpenSSLGenerator {
	return &OpenSSLGenerator{runner: runner, log: log}
}

// Name returns "openssl".
func (g *OpenSSLGenerator) Name() string { return "openssl" }

// RequiredTools returns the openssl binary.
func (g *OpenSSLGenerator) RequiredTools() []string { return []string{OpenSSLBinary} }

// Args builds the openssl command line for req. The subjectAltName is
// normalized through ParseSubjectAltName so only validated entries reach
// openssl.
func (g *OpenSSLGenerator) Args(req interfaces.CertificateRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseSubject(req.Subject); err != nil {
		return nil, err
	}
	sans, err := ParseSubjectAltName(req.SubjectAltName)
	if err != nil {
		return nil, err
	}

	args := []string{
		"req", "-x509", "-batch",
		"-newkey", "rsa:" + strconv.Itoa(RSAKeyBits),
		"-sha256",
		"-nodes",
		"-days", strconv.Itoa(req.Days),
		"-subj", req.Subject,
		"-keyout", req.KeyPath,
		"-out", req.CertPath,
	}
	if !sans.Empty() {
		args = append(args, "-addext", "subjectAltName="+sans.String())
	}

	return args, nil
}

// Generate runs openssl with the process umask narrowed to 077, so the key
// file openssl creates is owner-only from the moment it exists.
func (g *OpenSSLGenerator) Generate(ctx context.Context, req interfaces.CertificateRequest) error {
	args, err := g.Args(req)
	if err != nil {
		return err
	}

	g.log.Debug("Invoking openssl", "cert", req.CertPath, "key", req.KeyPath, "days", req.Days)

	return toolchain.WithUmask(0o077, func() error {
		if _, err := g.runner.Run(ctx, OpenSSLBinary, args...); err != nil {
			return fmt.Errorf("openssl req failed: %w", err)
		}
		return nil
	})
}
