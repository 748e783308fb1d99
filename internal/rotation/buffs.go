package rotation

import (
	"fmt"
	"log/slog"

	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/game"
)

// Buffs maintains self-buff uptime and spends the opportunistic utility
// oGCDs. The buffs share no trigger metric; each has its own precondition
// and the first eligible one in declared order wins. In-combat gating is
// per ability since Sprint works out of combat too.
type Buffs struct {
	baseModule
}

func NewBuffs(logger *slog.Logger) *Buffs {
	return &Buffs{baseModule{logger: logger}}
}

func (b *Buffs) Name() string  { return "Buffs" }
func (b *Buffs) Priority() int { return PriorityBuffs }

func (b *Buffs) TryExecute(ctx *Context, isMoving bool) bool {
	b.mustContext(ctx)
	cfg := ctx.Cfg.Rotation.Buffs

	if !cfg.Enabled {
		ctx.Debug.BuffState = "Disabled"
		return false
	}
	if !ctx.CanExecuteOgcd {
		ctx.Debug.BuffState = "No weave window"
		return false
	}

	if b.tryPresenceOfMind(ctx) {
		return true
	}
	if b.tryAssize(ctx) {
		return true
	}
	if b.tryLucidDreaming(ctx) {
		return true
	}
	if b.tryThinAir(ctx) {
		return true
	}
	if b.tryPlenaryIndulgence(ctx) {
		return true
	}
	if b.trySurecast(ctx) {
		return true
	}
	if b.trySprint(ctx, isMoving) {
		return true
	}

	ctx.Debug.BuffState = "Nothing to weave"
	return false
}

// ready is the gate shared by every buff: flag, level, recast, not already
// active, no hold rule.
func (b *Buffs) ready(ctx *Context, enabled bool, ability data.AbilityRecord) bool {
	player := ctx.Data.PlayerUnit
	if !enabled || !unlocked(ability, player) {
		return false
	}
	if ability.StatusID != 0 && player.HasStatus(ability.StatusID) {
		return false
	}

	return ctx.Cooldowns.IsReady(ability.ID) && !ctx.Held(ability)
}

// tryPresenceOfMind is the burst window, used on cooldown while fighting.
func (b *Buffs) tryPresenceOfMind(ctx *Context) bool {
	pom, _ := ctx.Catalog.ByID(data.PresenceOfMind)
	if !ctx.InCombat || !b.ready(ctx, ctx.Cfg.Rotation.Buffs.PresenceOfMind.Enabled, pom) {
		return false
	}
	if _, found := ctx.Data.BestEnemy(game.TargetNearest); !found {
		return false
	}

	if b.execute(ctx, pom, ctx.Data.PlayerUnit.ID) {
		ctx.Debug.BuffState = "Presence of Mind"
		return true
	}
	return false
}

// tryAssize is damage, healing and MP in one button; worth pressing when
// enemies are in range or the MP refund is needed.
func (b *Buffs) tryAssize(ctx *Context) bool {
	cfg := ctx.Cfg.Rotation.Buffs.Assize
	assize, _ := ctx.Catalog.ByID(data.Assize)
	if !ctx.InCombat || !b.ready(ctx, cfg.Enabled, assize) {
		return false
	}

	player := ctx.Data.PlayerUnit
	inRange := ctx.Data.EnemiesWithin(player.Position, assize.Radius)
	if inRange == 0 && player.MPPercent() > cfg.Threshold {
		return false
	}

	if b.execute(ctx, assize, player.ID) {
		ctx.Debug.BuffState = fmt.Sprintf("Assize (%d in range)", inRange)
		return true
	}
	return false
}

// tryLucidDreaming tops MP back up once it dips under the threshold.
func (b *Buffs) tryLucidDreaming(ctx *Context) bool {
	cfg := ctx.Cfg.Rotation.Buffs.LucidDreaming
	lucid, _ := ctx.Catalog.ByID(data.LucidDreaming)
	if !b.ready(ctx, cfg.Enabled, lucid) {
		return false
	}

	player := ctx.Data.PlayerUnit
	if player.MPPercent() >= cfg.Threshold {
		return false
	}

	if b.execute(ctx, lucid, player.ID) {
		ctx.Debug.BuffState = fmt.Sprintf("Lucid Dreaming (MP %.0f%%)", player.MPPercent()*100)
		return true
	}
	return false
}

// tryThinAir makes the next expensive cast free; held for a pending raise.
func (b *Buffs) tryThinAir(ctx *Context) bool {
	thinAir, _ := ctx.Catalog.ByID(data.ThinAir)
	if !b.ready(ctx, ctx.Cfg.Rotation.Buffs.ThinAir.Enabled, thinAir) {
		return false
	}

	if _, found := ctx.Data.DeadMemberNeedingRaise(); !found {
		return false
	}
	raise, _ := ctx.Catalog.ByID(data.Raise)
	if !unlocked(raise, ctx.Data.PlayerUnit) {
		return false
	}

	if b.execute(ctx, thinAir, ctx.Data.PlayerUnit.ID) {
		ctx.Debug.BuffState = "Thin Air before raise"
		return true
	}
	return false
}

// tryPlenaryIndulgence strengthens upcoming AoE heals while the party is
// broadly hurt.
func (b *Buffs) tryPlenaryIndulgence(ctx *Context) bool {
	cfg := ctx.Cfg.Rotation.Buffs.Plenary
	plenary, _ := ctx.Catalog.ByID(data.PlenaryIndulgence)
	if !ctx.InCombat || !b.ready(ctx, cfg.Enabled, plenary) {
		return false
	}

	metrics := ctx.Data.HealthMetrics(ctx.Cfg.Rotation.InjuredThreshold)
	if metrics.Average > cfg.Threshold {
		return false
	}

	if b.execute(ctx, plenary, ctx.Data.PlayerUnit.ID) {
		ctx.Debug.BuffState = fmt.Sprintf("Plenary Indulgence (avg %.0f%%)", metrics.Average*100)
		return true
	}
	return false
}

// trySurecast shrugs off knockbacks and cast interruptions. The engine
// cannot see a push coming, so this keeps the status up on cooldown while
// fighting; off by default since most pulls have nothing to resist.
func (b *Buffs) trySurecast(ctx *Context) bool {
	surecast, _ := ctx.Catalog.ByID(data.Surecast)
	if !ctx.InCombat || !b.ready(ctx, ctx.Cfg.Rotation.Buffs.Surecast.Enabled, surecast) {
		return false
	}

	if b.execute(ctx, surecast, ctx.Data.PlayerUnit.ID) {
		ctx.Debug.BuffState = "Surecast"
		return true
	}
	return false
}

// trySprint speeds up repositioning; usable out of combat.
func (b *Buffs) trySprint(ctx *Context, isMoving bool) bool {
	sprint, _ := ctx.Catalog.ByID(data.Sprint)
	if !b.ready(ctx, ctx.Cfg.Rotation.Buffs.Sprint.Enabled, sprint) {
		return false
	}
	if !isMoving {
		return false
	}

	if b.execute(ctx, sprint, ctx.Data.PlayerUnit.ID) {
		ctx.Debug.BuffState = "Sprint"
		return true
	}
	return false
}
