// Package components maps catalog ids to their installer adapters.
// The mapping is explicit and built once at startup; no dispatch by
// constructed name happens at runtime.
package components

import (
	"fmt"

	"github.com/alpforge/alpforge/internal/backend"
	"github.com/alpforge/alpforge/internal/catalog"
	"github.com/alpforge/alpforge/internal/core"
)

// Installer is the capability surface of one component.
type Installer interface {
	Install(ctx *core.SystemContext) error
	Uninstall(ctx *core.SystemContext) error
	// Installed is the live probe consulted next to the persisted
	// record for idempotency.
	Installed(ctx *core.SystemContext) (bool, error)
}

// InstallError wraps the failure of a single component action.
// Recoverable: the engine surfaces it per item, the user decides
// whether to continue.
type InstallError struct {
	ID  string
	Err error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("component %q: %v", e.ID, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Registry holds the id -> Installer mapping.
type Registry struct {
	installers map[string]Installer
}

// Build constructs the registry for a catalog. The edge repository
// component gets its dedicated adapter; every other component is
// driven by its declared packages and services.
func Build(cat *catalog.Catalog, pm backend.PackageManager, svc backend.ServiceManager) *Registry {
	reg := &Registry{installers: make(map[string]Installer, cat.Len())}
	for _, comp := range cat.All() {
		if comp.ID == EdgeRepoID {
			reg.installers[comp.ID] = NewEdgeRepo(pm)
			continue
		}
		reg.installers[comp.ID] = NewPkg(comp, pm, svc)
	}
	return reg
}

// NewRegistry wraps an explicit id -> Installer mapping.
func NewRegistry(installers map[string]Installer) *Registry {
	return &Registry{installers: installers}
}

// Get returns the installer for a component id.
func (r *Registry) Get(id string) (Installer, bool) {
	inst, ok := r.installers[id]
	return inst, ok
}
