package backend

import (
	"fmt"
	"strings"

	"github.com/alpforge/alpforge/internal/core"
)

// Apk is the Alpine package backend.
type Apk struct {
	run core.Runner
}

func NewApk(run core.Runner) *Apk {
	if run == nil {
		run = core.ExecRunner{}
	}
	return &Apk{run: run}
}

func (a *Apk) Install(ctx *core.SystemContext, pkgs ...string) error {
	if len(pkgs) == 0 {
		return nil
	}
	if ctx.DryRun {
		ctx.Logger.Info("[DryRun] apk add " + strings.Join(pkgs, " "))
		return nil
	}

	args := append([]string{"add"}, pkgs...)
	out, err := a.run.Run(ctx, "apk", args...)
	if err != nil {
		return fmt.Errorf("apk add %s: %w: %s", strings.Join(pkgs, " "), err, strings.TrimSpace(out))
	}
	return nil
}

func (a *Apk) Remove(ctx *core.SystemContext, pkgs ...string) error {
	if len(pkgs) == 0 {
		return nil
	}
	if ctx.DryRun {
		ctx.Logger.Info("[DryRun] apk del " + strings.Join(pkgs, " "))
		return nil
	}

	args := append([]string{"del"}, pkgs...)
	out, err := a.run.Run(ctx, "apk", args...)
	if err != nil {
		return fmt.Errorf("apk del %s: %w: %s", strings.Join(pkgs, " "), err, strings.TrimSpace(out))
	}
	return nil
}

// IsInstalled probes via `apk info -e`, which exits zero only when the
// package is present.
func (a *Apk) IsInstalled(ctx *core.SystemContext, pkg string) bool {
	_, err := a.run.Run(ctx, "apk", "info", "-e", pkg)
	return err == nil
}

func (a *Apk) UpdateIndex(ctx *core.SystemContext) error {
	if ctx.DryRun {
		ctx.Logger.Info("[DryRun] apk update")
		return nil
	}

	out, err := a.run.Run(ctx, "apk", "update")
	if err != nil {
		return fmt.Errorf("apk update: %w: %s", err, strings.TrimSpace(out))
	}
	return nil
}
