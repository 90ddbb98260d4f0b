// Package backend isolates the shell-outs to the OS package and
// service tools. The rest of the program never knows the concrete
// command invoked.
package backend

import "github.com/alpforge/alpforge/internal/core"

// PackageManager abstracts the system package tool.
type PackageManager interface {
	Install(ctx *core.SystemContext, pkgs ...string) error
	Remove(ctx *core.SystemContext, pkgs ...string) error
	IsInstalled(ctx *core.SystemContext, pkg string) bool
	UpdateIndex(ctx *core.SystemContext) error
}

// ServiceManager abstracts the init system.
type ServiceManager interface {
	Enable(ctx *core.SystemContext, service string) error
	Disable(ctx *core.SystemContext, service string) error
	Start(ctx *core.SystemContext, service string) error
	Stop(ctx *core.SystemContext, service string) error
	IsRunning(ctx *core.SystemContext, service string) bool
}
