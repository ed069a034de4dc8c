package provisioner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ruteri/pgtls-bootstrap/common"
	"github.com/ruteri/pgtls-bootstrap/interfaces"
	"github.com/ruteri/pgtls-bootstrap/pgconf"
)

// extraFile is an optional artifact written next to the certificate.
type extraFile struct {
	name    string
	path    string
	content []byte
	perm    os.FileMode
}

func (p *Provisioner) renderExtras() ([]extraFile, error) {
	var extras []extraFile

	if p.cfg.PGConfFile != "" {
		extras = append(extras, extraFile{
			name:    "postgresql.conf snippet",
			path:    p.cfg.PGConfFile,
			content: []byte(pgconf.TLSParameters(p.cfg.PGCertMount).Render()),
			perm:    ConfFilePerm,
		})
	}

	if p.cfg.InitSQLFile != "" {
		sql, err := p.cfg.InitScript().Build()
		if err != nil {
			return nil, err
		}
		extras = append(extras, extraFile{
			name:    "init script",
			path:    p.cfg.InitSQLFile,
			content: []byte(sql),
			perm:    InitSQLFilePerm,
		})
	}

	return extras, nil
}

// writeExtras creates each file that does not exist yet. Existing files are
// left untouched so local edits survive reruns.
func (p *Provisioner) writeExtras(extras []extraFile) (map[string]bool, error) {
	written := make(map[string]bool, len(extras))

	for _, extra := range extras {
		if err := os.MkdirAll(filepath.Dir(extra.path), extrasDirPerm); err != nil {
			return written, fmt.Errorf("%w: %s: %w", interfaces.ErrDirectoryCreation, filepath.Dir(extra.path), err)
		}

		f, err := os.OpenFile(extra.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, extra.perm)
		if errors.Is(err, fs.ErrExist) {
			p.log.Info("Keeping existing file", "file", extra.name, "path", extra.path)
			continue
		}
		if err != nil {
			return written, fmt.Errorf("failed to create %s: %w", extra.path, err)
		}

		_, err = f.Write(extra.content)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(extra.path)
			return written, fmt.Errorf("failed to write %s: %w", extra.path, err)
		}

		written[extra.path] = true
		common.OK(p.log, "Wrote file", "file", extra.name, "path", extra.path)
	}

	return written, nil
}
