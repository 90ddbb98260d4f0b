package backend

import (
	"fmt"
	"strings"

	"github.com/alpforge/alpforge/internal/core"
)

// OpenRC manages services through rc-update and rc-service, the init
// tooling on Alpine.
type OpenRC struct {
	run core.Runner
}

func NewOpenRC(run core.Runner) *OpenRC {
	if run == nil {
		run = core.ExecRunner{}
	}
	return &OpenRC{run: run}
}

func (o *OpenRC) Enable(ctx *core.SystemContext, service string) error {
	if ctx.DryRun {
		ctx.Logger.Info("[DryRun] rc-update add " + service + " default")
		return nil
	}
	return o.runCmd(ctx, "rc-update", "add", service, "default")
}

func (o *OpenRC) Disable(ctx *core.SystemContext, service string) error {
	if ctx.DryRun {
		ctx.Logger.Info("[DryRun] rc-update del " + service + " default")
		return nil
	}
	return o.runCmd(ctx, "rc-update", "del", service, "default")
}

func (o *OpenRC) Start(ctx *core.SystemContext, service string) error {
	if ctx.DryRun {
		ctx.Logger.Info("[DryRun] rc-service " + service + " start")
		return nil
	}
	return o.runCmd(ctx, "rc-service", service, "start")
}

func (o *OpenRC) Stop(ctx *core.SystemContext, service string) error {
	if ctx.DryRun {
		ctx.Logger.Info("[DryRun] rc-service " + service + " stop")
		return nil
	}
	return o.runCmd(ctx, "rc-service", service, "stop")
}

// IsRunning probes via `rc-service <svc> status`, zero exit means the
// service is started.
func (o *OpenRC) IsRunning(ctx *core.SystemContext, service string) bool {
	_, err := o.run.Run(ctx, "rc-service", service, "status")
	return err == nil
}

func (o *OpenRC) runCmd(ctx *core.SystemContext, name string, args ...string) error {
	out, err := o.run.Run(ctx, name, args...)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(out))
	}
	return nil
}
