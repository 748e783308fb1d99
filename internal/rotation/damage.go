package rotation

import (
	"fmt"
	"log/slog"

	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/game"
)

// Damage selects the best offensive action: DoT upkeep, then the gauge
// spender, then AoE when enough enemies cluster, then the single-target
// filler. It always reports false to the orchestrator; damage is filler and
// never claims the priority slot, though it still issues at most one
// execution per call.
type Damage struct {
	baseModule
}

func NewDamage(logger *slog.Logger) *Damage {
	return &Damage{baseModule{logger: logger}}
}

func (d *Damage) Name() string  { return "Damage" }
func (d *Damage) Priority() int { return PriorityDamage }

func (d *Damage) TryExecute(ctx *Context, isMoving bool) bool {
	d.mustContext(ctx)
	cfg := ctx.Cfg.Rotation.Damage

	if !cfg.Enabled {
		ctx.Debug.DpsState = "Disabled"
		return false
	}
	if !ctx.InCombat {
		ctx.Debug.DpsState = "Not in combat"
		return false
	}
	if !ctx.CanExecuteGcd {
		ctx.Debug.DpsState = "Waiting for GCD"
		return false
	}

	if d.tryDotRefresh(ctx) {
		return false
	}
	if d.tryMisery(ctx) {
		return false
	}
	if d.tryAoE(ctx, isMoving) {
		return false
	}
	d.trySingleTarget(ctx, isMoving)

	return false
}

// tryDotRefresh reapplies the DoT when it is missing or about to fall off.
// The whole line is instant, so it stays available while moving.
func (d *Damage) tryDotRefresh(ctx *Context) bool {
	cfg := ctx.Cfg.Rotation.Damage.DoT
	if !cfg.Enabled {
		return false
	}

	player := ctx.Data.PlayerUnit
	dot, found := ctx.Catalog.BestAtLevel(data.FamilyDamageOverTime, player.Level)
	if !found {
		return false
	}

	enemy, found := ctx.Data.DotRefreshTarget(dot.StatusID, cfg.RefreshBuffer)
	if !found {
		return false
	}
	if player.MP < dot.MPCost || ctx.Held(dot) {
		return false
	}

	if d.execute(ctx, dot, enemy.ID) {
		ctx.Debug.DpsState = fmt.Sprintf("%s on %s", dot.Name, enemy.Name)
		return true
	}
	return false
}

// tryMisery spends the full blood lily. Instant and strong, it goes before
// the regular fillers.
func (d *Damage) tryMisery(ctx *Context) bool {
	player := ctx.Data.PlayerUnit
	misery, _ := ctx.Catalog.ByID(data.AfflatusMisery)
	if !unlocked(misery, player) || player.Gauge.BloodLily < game.MaxBloodLily {
		return false
	}

	enemy, found := ctx.Data.BestEnemy(game.TargetStrategy(ctx.Cfg.Rotation.Damage.TargetStrategy))
	if !found || ctx.Held(misery) {
		return false
	}

	if d.execute(ctx, misery, enemy.ID) {
		ctx.Debug.DpsState = "Afflatus Misery on " + enemy.Name
		return true
	}
	return false
}

// tryAoE switches to the AoE filler when enough enemies stand in its radius.
func (d *Damage) tryAoE(ctx *Context, isMoving bool) bool {
	cfg := ctx.Cfg.Rotation.Damage.AoE
	if !cfg.Enabled {
		return false
	}

	player := ctx.Data.PlayerUnit
	aoe, found := ctx.Catalog.BestAtLevel(data.FamilyAoEDamage, player.Level)
	if !found {
		return false
	}

	inRange := ctx.Data.EnemiesWithin(player.Position, aoe.Radius)
	if inRange < cfg.MinTargets {
		ctx.Debug.AoEStatus = fmt.Sprintf("Enemies %d < min %d", inRange, cfg.MinTargets)
		return false
	}
	if isMoving && !aoe.IsInstant() {
		ctx.Debug.AoEStatus = "Moving"
		return false
	}
	if player.MP < aoe.MPCost || ctx.Held(aoe) {
		return false
	}

	if d.execute(ctx, aoe, player.ID) {
		ctx.Debug.DpsState = fmt.Sprintf("%s on %d enemies", aoe.Name, inRange)
		ctx.Debug.AoEStatus = fmt.Sprintf("Enemies %d >= min %d", inRange, cfg.MinTargets)
		return true
	}
	return false
}

// trySingleTarget is the lowest-priority filler on the current target.
func (d *Damage) trySingleTarget(ctx *Context, isMoving bool) bool {
	cfg := ctx.Cfg.Rotation.Damage.Single
	if !cfg.Enabled {
		return false
	}

	enemy, found := ctx.Data.BestEnemy(game.TargetStrategy(ctx.Cfg.Rotation.Damage.TargetStrategy))
	if !found {
		ctx.Debug.DpsState = "No enemy found"
		return false
	}

	player := ctx.Data.PlayerUnit
	attack, found := ctx.Catalog.BestAtLevel(data.FamilySingleDamage, player.Level)
	if !found {
		return false
	}
	if isMoving && !attack.IsInstant() {
		ctx.Debug.DpsState = "Moving"
		return false
	}
	if player.MP < attack.MPCost {
		ctx.Debug.DpsState = fmt.Sprintf("MP %d < cost %d", player.MP, attack.MPCost)
		return false
	}
	if ctx.Held(attack) {
		ctx.Debug.DpsState = "Held by rule"
		return false
	}

	if d.execute(ctx, attack, enemy.ID) {
		ctx.Debug.DpsState = fmt.Sprintf("%s on %s", attack.Name, enemy.Name)
		return true
	}
	return false
}
