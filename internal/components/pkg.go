package components

import (
	"github.com/alpforge/alpforge/internal/backend"
	"github.com/alpforge/alpforge/internal/catalog"
	"github.com/alpforge/alpforge/internal/core"
)

// Pkg installs a component from its declared apk packages and OpenRC
// services.
type Pkg struct {
	comp catalog.Component
	pm   backend.PackageManager
	svc  backend.ServiceManager
}

func NewPkg(comp catalog.Component, pm backend.PackageManager, svc backend.ServiceManager) *Pkg {
	return &Pkg{comp: comp, pm: pm, svc: svc}
}

func (p *Pkg) Install(ctx *core.SystemContext) error {
	if err := p.pm.Install(ctx, p.comp.Packages...); err != nil {
		return &InstallError{ID: p.comp.ID, Err: err}
	}

	for _, service := range p.comp.Services {
		if err := p.svc.Enable(ctx, service); err != nil {
			return &InstallError{ID: p.comp.ID, Err: err}
		}
		if err := p.svc.Start(ctx, service); err != nil {
			return &InstallError{ID: p.comp.ID, Err: err}
		}
	}

	return nil
}

func (p *Pkg) Uninstall(ctx *core.SystemContext) error {
	for _, service := range p.comp.Services {
		if err := p.svc.Stop(ctx, service); err != nil {
			ctx.Logger.Warn("stop " + service + " failed: " + err.Error())
		}
		if err := p.svc.Disable(ctx, service); err != nil {
			ctx.Logger.Warn("disable " + service + " failed: " + err.Error())
		}
	}

	if err := p.pm.Remove(ctx, p.comp.Packages...); err != nil {
		return &InstallError{ID: p.comp.ID, Err: err}
	}
	return nil
}

// Installed reports true only when every declared package is present.
func (p *Pkg) Installed(ctx *core.SystemContext) (bool, error) {
	if len(p.comp.Packages) == 0 {
		return false, nil
	}
	for _, pkg := range p.comp.Packages {
		if !p.pm.IsInstalled(ctx, pkg) {
			return false, nil
		}
	}
	return true, nil
}
