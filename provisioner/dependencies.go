package provisioner

import (
	"github.com/ruteri/pgtls-bootstrap/toolchain"
)

// checkDependencies verifies every external tool the run may exec and that
// the final ownership can be applied at all.
func (p *Provisioner) checkDependencies() error {
	tools := append([]string{}, p.generator.RequiredTools()...)
	tools = append(tools, p.fs.RequiredTools(p.cfg.Ownership())...)

	if err := toolchain.Require(p.lookPath, tools...); err != nil {
		p.log.Error("Missing required tools", "err", err)
		return err
	}

	if err := p.fs.CanApply(p.cfg.Ownership()); err != nil {
		p.log.Error("Ownership cannot be applied", "err", err)
		return err
	}

	p.log.Debug("Dependencies available", "tools", tools)
	return nil
}
