package rotation

import (
	"fmt"
	"log/slog"
	"sort"
)

// Orchestrator evaluates the modules in ascending priority order and stops
// at the first one that acts. It is invoked once per eligibility track each
// tick: a GCD pass and, independently, an oGCD pass, so a single tick may
// produce up to two actions on the two timing tracks.
type Orchestrator struct {
	modules []Module
	logger  *slog.Logger
}

func NewOrchestrator(logger *slog.Logger, modules []Module) (*Orchestrator, error) {
	if len(modules) == 0 {
		return nil, fmt.Errorf("no rotation modules registered")
	}

	sorted := make([]Module, len(modules))
	copy(sorted, modules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Priority() == sorted[i-1].Priority() {
			return nil, fmt.Errorf("duplicate module priority %d (%s, %s)", sorted[i].Priority(), sorted[i-1].Name(), sorted[i].Name())
		}
	}

	return &Orchestrator{modules: sorted, logger: logger}, nil
}

// RunPass walks the module chain once and reports whether any module acted.
func (o *Orchestrator) RunPass(ctx *Context) bool {
	if ctx == nil {
		panic("rotation: RunPass called with nil context")
	}

	ctx.Debug.PlanningState = "Idle"
	ctx.Debug.LilyCount = ctx.Data.PlayerUnit.Gauge.Lilies

	for _, module := range o.modules {
		if module.TryExecute(ctx, ctx.IsMoving) {
			ctx.Debug.PlanningState = module.Name()
			return true
		}
	}

	return false
}

// Modules exposes the evaluation order, mainly for the status UI.
func (o *Orchestrator) Modules() []Module {
	return o.modules
}
