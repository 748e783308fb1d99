package rotation

import (
	"log/slog"

	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/game"
)

// Module is the shared contract of the five decision units. TryExecute
// returns true only if exactly one execution call was issued; "nothing to
// do" is the normal false path, never an error. A nil context is a contract
// violation and panics.
type Module interface {
	Name() string
	Priority() int
	TryExecute(ctx *Context, isMoving bool) bool
}

// Fixed module priorities, lower runs first. Life-and-death decisions must
// never be starved by routine ones, and damage is always the filler.
const (
	PriorityResurrection = 5
	PriorityHealing      = 10
	PriorityDefensive    = 20
	PriorityBuffs        = 30
	PriorityDamage       = 50
)

type baseModule struct {
	logger *slog.Logger
}

// mustContext guards the calling contract shared by every module.
func (baseModule) mustContext(ctx *Context) {
	if ctx == nil {
		panic("rotation: TryExecute called with nil context")
	}
}

// execute routes one ability to the matching executor call and records it in
// the debug sidecar when the host confirms it.
func (m baseModule) execute(ctx *Context, ability data.AbilityRecord, target game.UnitID) bool {
	var done bool
	switch {
	case ability.Category == data.CategoryOGCD && ability.Target == data.TargetGroundArea:
		done = ctx.Executor.ExecuteGroundOgcd(ability, ctx.Data.PlayerUnit.Position)
	case ability.Category == data.CategoryOGCD:
		done = ctx.Executor.ExecuteOgcd(ability, target)
	default:
		done = ctx.Executor.ExecuteGcd(ability, target)
	}

	if done {
		ctx.Debug.LastAction = ability.Name
		ctx.Debug.ActionsUsed++
		m.logger.Debug("Action issued", slog.String("ability", ability.Name), slog.Int("target", int(target)))
	}

	return done
}
