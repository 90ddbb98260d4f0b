// Package engine executes a priority-ordered installation queue
// against the component adapters, tracking per-item outcome and
// persisting installed records.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alpforge/alpforge/internal/catalog"
	"github.com/alpforge/alpforge/internal/components"
	"github.com/alpforge/alpforge/internal/core"
	"github.com/alpforge/alpforge/internal/queue"
	"github.com/alpforge/alpforge/internal/record"
	"github.com/alpforge/alpforge/internal/resolver"
	"github.com/alpforge/alpforge/internal/system"
)

// Phase is the engine's run state.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseInitializing  Phase = "initializing"
	PhaseBuildingQueue Phase = "building-queue"
	PhaseExecuting     Phase = "executing"
	PhaseReporting     Phase = "reporting"
	PhaseDone          Phase = "done"
	PhaseAborted       Phase = "aborted"
)

// Prompter decides whether to keep going after a component failed.
type Prompter interface {
	ContinueAfterFailure(id string, err error) bool
}

// AutoContinue never stops on failure (--yes runs).
type AutoContinue struct{}

func (AutoContinue) ContinueAfterFailure(string, error) bool { return true }

// Outcome is the transient per-run result, discarded after reporting.
type Outcome struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration

	Succeeded []string
	Failed    []string
	Skipped   []string
	Aborted   bool
}

// OK reports whether the run succeeded. Skips are neutral.
func (o *Outcome) OK() bool { return len(o.Failed) == 0 }

// Engine drives one installation run.
type Engine struct {
	cat      *catalog.Catalog
	registry *components.Registry
	records  *record.Store
	prereqs  []system.Prereq
	prompter Prompter

	phase Phase
}

func New(cat *catalog.Catalog, registry *components.Registry, records *record.Store, prereqs []system.Prereq, prompter Prompter) *Engine {
	return &Engine{
		cat:      cat,
		registry: registry,
		records:  records,
		prereqs:  prereqs,
		prompter: prompter,
		phase:    PhaseIdle,
	}
}

// Phase returns the current run phase.
func (e *Engine) Phase() Phase { return e.phase }

// Run installs the requested components plus their dependency closure
// in priority order. Prerequisite and resolver errors are fatal and
// happen before any installation side effect; individual component
// failures feed the continue-or-abort prompt.
func (e *Engine) Run(ctx *core.SystemContext, requested []string) (*Outcome, error) {
	log := ctx.Logger

	e.phase = PhaseInitializing
	for _, p := range e.prereqs {
		if err := p.Verify(ctx); err != nil {
			return nil, err
		}
		log.Debug("prerequisite ok: " + p.Name())
	}

	e.phase = PhaseBuildingQueue
	resolved, err := resolver.Resolve(e.cat, requested)
	if err != nil {
		return nil, err
	}
	ordered := queue.Order(e.cat, resolved)
	log.Debug(fmt.Sprintf("installation queue holds %d components", len(ordered)))

	e.phase = PhaseExecuting
	outcome := &Outcome{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}

	for _, id := range ordered {
		comp, _ := e.cat.Get(id)

		if comp.When != "" {
			shouldRun, condErr := core.EvaluateCondition(comp.When, ctx)
			if condErr != nil {
				if !e.recordFailure(ctx, outcome, id, condErr) {
					break
				}
				continue
			}
			if !shouldRun {
				log.Info(fmt.Sprintf("[%s] skipped (condition not met)", id))
				outcome.Skipped = append(outcome.Skipped, id)
				continue
			}
		}

		installer, ok := e.registry.Get(id)
		if !ok {
			if !e.recordFailure(ctx, outcome, id, fmt.Errorf("no installer registered")) {
				break
			}
			continue
		}

		if e.alreadyInstalled(ctx, id, installer) {
			log.Info(fmt.Sprintf("[%s] skipped, already installed", id))
			outcome.Skipped = append(outcome.Skipped, id)
			continue
		}

		log.Info(fmt.Sprintf("[%s] installing %s", id, comp.Name))
		if err := installer.Install(ctx); err != nil {
			if !e.recordFailure(ctx, outcome, id, err) {
				break
			}
			continue
		}

		e.persistRecord(ctx, comp)
		outcome.Succeeded = append(outcome.Succeeded, id)
		log.Info(fmt.Sprintf("[%s] installed", id))
	}

	if outcome.Aborted {
		e.phase = PhaseAborted
	} else {
		e.phase = PhaseReporting
	}
	outcome.Duration = time.Since(outcome.StartedAt)

	if e.phase == PhaseReporting {
		e.phase = PhaseDone
	}
	return outcome, nil
}

// recordFailure books a failed component and asks the prompter whether
// to continue. Returns false when the run must abort.
func (e *Engine) recordFailure(ctx *core.SystemContext, outcome *Outcome, id string, err error) bool {
	ctx.Logger.Error(fmt.Sprintf("[%s] failed: %v", id, err))
	outcome.Failed = append(outcome.Failed, id)

	if e.prompter.ContinueAfterFailure(id, err) {
		return true
	}
	outcome.Aborted = true
	return false
}

// alreadyInstalled consults the persisted record first, then the
// adapter's live probe.
func (e *Engine) alreadyInstalled(ctx *core.SystemContext, id string, installer components.Installer) bool {
	if e.records.Exists(id) {
		return true
	}
	live, err := installer.Installed(ctx)
	if err != nil {
		ctx.Logger.Debug(fmt.Sprintf("[%s] live probe failed: %v", id, err))
		return false
	}
	return live
}

// persistRecord writes the installed marker. A failed write is logged
// and the component still counts as succeeded: the package is on the
// system whether or not the bookkeeping landed.
func (e *Engine) persistRecord(ctx *core.SystemContext, comp catalog.Component) {
	if ctx.DryRun {
		return
	}

	rec := record.Record{
		ID:          comp.ID,
		Name:        comp.Name,
		Category:    comp.Category,
		InstalledAt: time.Now(),
		Fingerprint: ctx.Fingerprint(),
	}
	if err := e.records.Write(rec); err != nil {
		ctx.Logger.Warn(fmt.Sprintf("[%s] installed but record write failed: %v", comp.ID, err))
	}
}
