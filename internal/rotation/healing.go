package rotation

import (
	"fmt"
	"log/slog"

	"github.com/isleen/lilybot/internal/data"
)

// Healing keeps party HP above failure thresholds. Its sub-checks run in
// descending urgency: emergency cooldown, cleanse, regen upkeep, the free
// oGCD heal, lily heal, AoE heal, single-target fallback. Each sub-check is
// independently toggleable and level-gated, and each records its own reason
// when it declines.
type Healing struct {
	baseModule
}

func NewHealing(logger *slog.Logger) *Healing {
	return &Healing{baseModule{logger: logger}}
}

func (h *Healing) Name() string  { return "Healing" }
func (h *Healing) Priority() int { return PriorityHealing }

func (h *Healing) TryExecute(ctx *Context, isMoving bool) bool {
	h.mustContext(ctx)

	if !ctx.Cfg.Rotation.Healing.Enabled {
		ctx.Debug.HealState = "Disabled"
		return false
	}

	if h.tryBenediction(ctx) {
		return true
	}
	if h.tryEsuna(ctx, isMoving) {
		return true
	}
	if h.tryRegen(ctx) {
		return true
	}
	if h.tryTetragrammaton(ctx) {
		return true
	}
	if h.tryLilyHeal(ctx) {
		return true
	}
	if h.tryAoEHeal(ctx, isMoving) {
		return true
	}

	return h.trySingleHeal(ctx, isMoving)
}

// tryBenediction fires the emergency full heal on a critically low member.
func (h *Healing) tryBenediction(ctx *Context) bool {
	cfg := ctx.Cfg.Rotation.Healing.Benediction
	if !cfg.Enabled || !ctx.CanExecuteOgcd {
		return false
	}

	player := ctx.Data.PlayerUnit
	bene, _ := ctx.Catalog.ByID(data.Benediction)
	if !unlocked(bene, player) {
		ctx.Debug.HealState = fmt.Sprintf("Level %d < %d", player.Level, bene.MinLevel)
		return false
	}

	member, found := ctx.Data.LowestHPMember()
	if !found || member.HPPercent() > cfg.Threshold {
		ctx.Debug.HealState = "No emergency"
		return false
	}
	if !ctx.Cooldowns.IsReady(bene.ID) {
		ctx.Debug.HealState = fmt.Sprintf("Benediction ready in %.0fs", ctx.Cooldowns.Remaining(bene.ID).Seconds())
		return false
	}
	if ctx.Held(bene) {
		ctx.Debug.HealState = "Benediction held by rule"
		return false
	}

	if h.execute(ctx, bene, member.ID) {
		ctx.Debug.HealState = "Benediction on " + member.Name
		return true
	}
	return false
}

// tryEsuna removes a dangerous debuff. Cleansing is a hardcast GCD and only
// worth it in combat.
func (h *Healing) tryEsuna(ctx *Context, isMoving bool) bool {
	cfg := ctx.Cfg.Rotation.Healing.Esuna
	if !cfg.Enabled || !ctx.CanExecuteGcd || !ctx.InCombat {
		return false
	}

	member, debuff, found := ctx.Data.CleanseTarget(cfg.MinDuration)
	if !found {
		ctx.Debug.CleanseState = "Nothing to cleanse"
		return false
	}

	player := ctx.Data.PlayerUnit
	esuna, _ := ctx.Catalog.ByID(data.Esuna)
	if !unlocked(esuna, player) {
		ctx.Debug.CleanseState = fmt.Sprintf("Level %d < %d", player.Level, esuna.MinLevel)
		return false
	}
	if isMoving {
		ctx.Debug.CleanseState = "Moving"
		return false
	}
	if player.MP < esuna.MPCost {
		ctx.Debug.CleanseState = fmt.Sprintf("MP %d < cost %d", player.MP, esuna.MPCost)
		return false
	}
	if ctx.Held(esuna) {
		ctx.Debug.CleanseState = "Held by rule"
		return false
	}

	if h.execute(ctx, esuna, member.ID) {
		ctx.Debug.CleanseState = fmt.Sprintf("Cleansing %s (%.0fs left)", member.Name, debuff.Remaining.Seconds())
		return true
	}
	return false
}

// tryRegen keeps the HoT rolling on a wounded but not critical member. An
// already fresh application is left alone.
func (h *Healing) tryRegen(ctx *Context) bool {
	cfg := ctx.Cfg.Rotation.Healing.Regen
	if !cfg.Enabled || !ctx.CanExecuteGcd || !ctx.InCombat {
		return false
	}

	player := ctx.Data.PlayerUnit
	regen, _ := ctx.Catalog.ByID(data.Regen)
	if !unlocked(regen, player) {
		ctx.Debug.RegenState = fmt.Sprintf("Level %d < %d", player.Level, regen.MinLevel)
		return false
	}

	critical := ctx.Cfg.Rotation.Healing.Benediction.Threshold
	member, found := ctx.Data.RegenTarget(cfg.Threshold, critical, regen.StatusID, cfg.RefreshBuffer)
	if !found {
		ctx.Debug.RegenState = "No regen target"
		return false
	}
	if player.MP < regen.MPCost {
		ctx.Debug.RegenState = fmt.Sprintf("MP %d < cost %d", player.MP, regen.MPCost)
		return false
	}
	if ctx.Held(regen) {
		ctx.Debug.RegenState = "Held by rule"
		return false
	}

	if h.execute(ctx, regen, member.ID) {
		ctx.Debug.RegenState = "Regen on " + member.Name
		return true
	}
	return false
}

// tryTetragrammaton spends the free oGCD heal opportunistically.
func (h *Healing) tryTetragrammaton(ctx *Context) bool {
	cfg := ctx.Cfg.Rotation.Healing.Tetragrammaton
	if !cfg.Enabled || !ctx.CanExecuteOgcd {
		return false
	}

	player := ctx.Data.PlayerUnit
	tetra, _ := ctx.Catalog.ByID(data.Tetragrammaton)
	if !unlocked(tetra, player) {
		return false
	}

	member, found := ctx.Data.LowestHPMember()
	if !found || member.HPPercent() > cfg.Threshold {
		return false
	}
	if !ctx.Cooldowns.IsReady(tetra.ID) || ctx.Held(tetra) {
		return false
	}

	if h.execute(ctx, tetra, member.ID) {
		ctx.Debug.HealState = "Tetragrammaton on " + member.Name
		return true
	}
	return false
}

// tryLilyHeal spends a lily on the instant single-target heal. Instant, so
// it stays available while moving.
func (h *Healing) tryLilyHeal(ctx *Context) bool {
	cfg := ctx.Cfg.Rotation.Healing.Lily
	if !cfg.Enabled || !ctx.CanExecuteGcd {
		return false
	}

	player := ctx.Data.PlayerUnit
	solace, _ := ctx.Catalog.ByID(data.AfflatusSolace)
	if !unlocked(solace, player) || player.Gauge.Lilies < solace.LilyCost {
		return false
	}

	member, found := ctx.Data.LowestHPMember()
	if !found || member.HPPercent() > cfg.Threshold {
		return false
	}
	if ctx.Held(solace) {
		return false
	}

	if h.execute(ctx, solace, member.ID) {
		ctx.Debug.HealState = "Afflatus Solace on " + member.Name
		return true
	}
	return false
}

// tryAoEHeal casts the party heal once enough members are hurt to justify
// its cost. Prefers the instant lily variant while moving.
func (h *Healing) tryAoEHeal(ctx *Context, isMoving bool) bool {
	cfg := ctx.Cfg.Rotation.Healing.AoE
	if !cfg.Enabled || !ctx.CanExecuteGcd {
		return false
	}

	player := ctx.Data.PlayerUnit
	injured := ctx.Data.HealthMetrics(cfg.Threshold).Injured
	if injured < cfg.MinTargets {
		ctx.Debug.AoEStatus = fmt.Sprintf("Injured %d < min %d", injured, cfg.MinTargets)
		return false
	}

	// Afflatus Rapture is instant and free on MP, use it when a lily is up.
	if ctx.Cfg.Rotation.Healing.Lily.Enabled {
		rapture, _ := ctx.Catalog.ByID(data.AfflatusRapture)
		if unlocked(rapture, player) && player.Gauge.Lilies >= rapture.LilyCost && !ctx.Held(rapture) {
			if h.execute(ctx, rapture, player.ID) {
				ctx.Debug.AoEStatus = fmt.Sprintf("Afflatus Rapture on %d injured", injured)
				return true
			}
			return false
		}
	}

	aoe, found := ctx.Catalog.BestAtLevel(data.FamilyAoEHeal, player.Level)
	if !found {
		ctx.Debug.AoEStatus = fmt.Sprintf("Level %d too low", player.Level)
		return false
	}
	if isMoving {
		ctx.Debug.AoEStatus = "Moving"
		return false
	}
	if player.MP < aoe.MPCost {
		ctx.Debug.AoEStatus = fmt.Sprintf("MP %d < cost %d", player.MP, aoe.MPCost)
		return false
	}
	if ctx.Held(aoe) {
		ctx.Debug.AoEStatus = "Held by rule"
		return false
	}

	if h.execute(ctx, aoe, player.ID) {
		ctx.Debug.AoEStatus = fmt.Sprintf("%s on %d injured", aoe.Name, injured)
		return true
	}
	return false
}

// trySingleHeal is the last-resort GCD heal on the lowest member.
func (h *Healing) trySingleHeal(ctx *Context, isMoving bool) bool {
	cfg := ctx.Cfg.Rotation.Healing.Single
	if !cfg.Enabled || !ctx.CanExecuteGcd {
		return false
	}

	member, found := ctx.Data.LowestHPMember()
	if !found || member.HPPercent() > cfg.Threshold {
		ctx.Debug.HealState = "Party healthy"
		return false
	}

	player := ctx.Data.PlayerUnit
	heal, found := ctx.Catalog.BestAtLevel(data.FamilySingleHeal, player.Level)
	if !found {
		ctx.Debug.HealState = fmt.Sprintf("Level %d too low", player.Level)
		return false
	}
	if isMoving && !heal.IsInstant() {
		ctx.Debug.HealState = "Moving"
		return false
	}
	if player.MP < heal.MPCost {
		ctx.Debug.HealState = fmt.Sprintf("MP %d < cost %d", player.MP, heal.MPCost)
		return false
	}
	if ctx.Held(heal) {
		ctx.Debug.HealState = "Held by rule"
		return false
	}

	if h.execute(ctx, heal, member.ID) {
		ctx.Debug.HealState = fmt.Sprintf("%s on %s", heal.Name, member.Name)
		return true
	}
	return false
}
