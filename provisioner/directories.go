package provisioner

import (
	"context"
	"fmt"
	"os"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// prepareDirectories creates both directories and applies their modes. The
// data directory mode is applied explicitly so the umask has no effect on it.
func (p *Provisioner) prepareDirectories(ctx context.Context) error {
	for _, dir := range []struct {
		path string
		perm os.FileMode
	}{
		{p.cfg.DataDir, DataDirPerm},
		{p.cfg.CertDir, CertDirPerm},
	} {
		if err := os.MkdirAll(dir.path, dir.perm); err != nil {
			return fmt.Errorf("%w: %s: %w", interfaces.ErrDirectoryCreation, dir.path, err)
		}
	}

	if err := p.fs.Chmod(ctx, p.cfg.DataDir, DataDirPerm); err != nil {
		return err
	}

	if err := p.fs.Chmod(ctx, p.cfg.CertDir, CertDirPerm); err != nil {
		if p.cfg.StrictPermissions {
			return err
		}
		p.log.Warn("Could not set certificate directory permissions", "path", p.cfg.CertDir, "err", err)
	}

	p.log.Info("Directories ready", "dataDir", p.cfg.DataDir, "certDir", p.cfg.CertDir)
	return nil
}
