package provisioner

import (
	"context"

	"github.com/ruteri/pgtls-bootstrap/common"
	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// enforceOwnership applies the final modes and hands every provisioned path
// to the runtime user. The data directory mode is applied again last since
// it is the one PostgreSQL checks at startup.
func (p *Provisioner) enforceOwnership(ctx context.Context, req interfaces.CertificateRequest, extras []extraFile) error {
	if err := p.fs.Chmod(ctx, req.CertPath, CertFilePerm); err != nil {
		return err
	}
	if err := p.fs.Chmod(ctx, req.KeyPath, KeyFilePerm); err != nil {
		return err
	}

	owner := p.cfg.Ownership()
	paths := []string{p.cfg.CertDir, p.cfg.DataDir}
	for _, extra := range extras {
		paths = append(paths, extra.path)
	}
	for _, path := range paths {
		if err := p.fs.ChownRecursive(ctx, path, owner); err != nil {
			return err
		}
	}

	if err := p.fs.Chmod(ctx, p.cfg.DataDir, DataDirPerm); err != nil {
		return err
	}

	common.OK(p.log, "Ownership applied", "owner", owner.String(), "paths", paths)
	return nil
}
