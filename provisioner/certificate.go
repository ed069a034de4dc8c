package provisioner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ruteri/pgtls-bootstrap/common"
	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// provisionCertificate keeps an existing certificate and key pair, or
// generates a new one. A pair with a missing or empty half is regenerated.
func (p *Provisioner) provisionCertificate(ctx context.Context, req interfaces.CertificateRequest) (bool, error) {
	certPresent, err := nonEmptyFile(req.CertPath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", interfaces.ErrCertificateGeneration, err)
	}
	keyPresent, err := nonEmptyFile(req.KeyPath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", interfaces.ErrCertificateGeneration, err)
	}

	if certPresent && keyPresent {
		p.log.Info("Certificate already present", "cert", req.CertPath, "key", req.KeyPath)
		return false, nil
	}

	for _, path := range []string{req.CertPath, req.KeyPath} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("%w: removing stale %s: %w", interfaces.ErrCertificateGeneration, path, err)
		} else if err == nil {
			p.log.Warn("Removed incomplete certificate pair member", "path", path)
		}
	}

	p.log.Info("Generating certificate",
		"generator", p.generator.Name(),
		"subject", req.Subject,
		"san", req.SubjectAltName,
		"days", req.Days,
	)
	if err := p.generator.Generate(ctx, req); err != nil {
		return false, fmt.Errorf("%w: %w", interfaces.ErrCertificateGeneration, err)
	}

	for _, path := range []string{req.CertPath, req.KeyPath} {
		ok, err := nonEmptyFile(path)
		if err != nil || !ok {
			return false, fmt.Errorf("%w: %s is absent or empty", interfaces.ErrCertificateOutputMissing, path)
		}
	}

	common.OK(p.log, "Certificate generated", "cert", req.CertPath, "key", req.KeyPath)
	return true, nil
}

// nonEmptyFile reports whether path is a regular file with content. A
// missing path is not an error.
func nonEmptyFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("%s is not a regular file", path)
	}
	return info.Size() > 0, nil
}
