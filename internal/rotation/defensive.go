package rotation

import (
	"fmt"
	"log/slog"

	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/game"
)

// Defensive weaves mitigation before damage lands: single-target shields
// first, the broad party cooldowns last, so a cheap targeted answer is
// preferred when either would do. All of these are combat-only oGCDs, fed
// from one shared party scan.
type Defensive struct {
	baseModule
}

func NewDefensive(logger *slog.Logger) *Defensive {
	return &Defensive{baseModule{logger: logger}}
}

func (d *Defensive) Name() string  { return "Defensive" }
func (d *Defensive) Priority() int { return PriorityDefensive }

func (d *Defensive) TryExecute(ctx *Context, _ bool) bool {
	d.mustContext(ctx)
	cfg := ctx.Cfg.Rotation.Defensive

	if !cfg.Enabled {
		ctx.Debug.DefenseState = "Disabled"
		return false
	}
	if !ctx.InCombat {
		ctx.Debug.DefenseState = "Not in combat"
		return false
	}
	if !ctx.CanExecuteOgcd {
		ctx.Debug.DefenseState = "No weave window"
		return false
	}

	metrics := ctx.Data.HealthMetrics(ctx.Cfg.Rotation.InjuredThreshold)

	if d.tryDivineBenison(ctx, metrics) {
		return true
	}
	if d.tryAquaveil(ctx, metrics) {
		return true
	}
	if d.tryAsylum(ctx, metrics) {
		return true
	}
	if d.tryTemperance(ctx, metrics) {
		return true
	}

	ctx.Debug.DefenseState = fmt.Sprintf("Holding (avg %.0f%%, min %.0f%%)", metrics.Average*100, metrics.Minimum*100)
	return false
}

// tryDivineBenison shields the most endangered member. Cheapest answer,
// checked first.
func (d *Defensive) tryDivineBenison(ctx *Context, metrics game.PartyHealthMetrics) bool {
	cfg := ctx.Cfg.Rotation.Defensive.DivineBenison
	if !cfg.Enabled || metrics.Minimum > cfg.Threshold {
		return false
	}

	player := ctx.Data.PlayerUnit
	benison, _ := ctx.Catalog.ByID(data.DivineBenison)
	if !unlocked(benison, player) || !ctx.Cooldowns.IsReady(benison.ID) || ctx.Held(benison) {
		return false
	}

	member, found := ctx.Data.LowestHPMember()
	if !found || member.StatusRemaining(benison.StatusID) > 0 {
		return false
	}

	if d.execute(ctx, benison, member.ID) {
		ctx.Debug.DefenseState = "Divine Benison on " + member.Name
		return true
	}
	return false
}

// tryAquaveil adds percentage mitigation on the member taking the heaviest
// hits.
func (d *Defensive) tryAquaveil(ctx *Context, metrics game.PartyHealthMetrics) bool {
	cfg := ctx.Cfg.Rotation.Defensive.Aquaveil
	if !cfg.Enabled || metrics.Minimum > cfg.Threshold {
		return false
	}

	player := ctx.Data.PlayerUnit
	aquaveil, _ := ctx.Catalog.ByID(data.Aquaveil)
	if !unlocked(aquaveil, player) || !ctx.Cooldowns.IsReady(aquaveil.ID) || ctx.Held(aquaveil) {
		return false
	}

	member, found := ctx.Data.LowestHPMember()
	if !found || member.StatusRemaining(aquaveil.StatusID) > 0 {
		return false
	}

	if d.execute(ctx, aquaveil, member.ID) {
		ctx.Debug.DefenseState = "Aquaveil on " + member.Name
		return true
	}
	return false
}

// tryAsylum drops the ground HoT once enough of the party is hurt.
func (d *Defensive) tryAsylum(ctx *Context, metrics game.PartyHealthMetrics) bool {
	cfg := ctx.Cfg.Rotation.Defensive.Asylum
	if !cfg.Enabled || metrics.Average > cfg.Threshold || metrics.Injured < cfg.MinInjured {
		return false
	}

	player := ctx.Data.PlayerUnit
	asylum, _ := ctx.Catalog.ByID(data.Asylum)
	if !unlocked(asylum, player) || !ctx.Cooldowns.IsReady(asylum.ID) || ctx.Held(asylum) {
		return false
	}

	if d.execute(ctx, asylum, player.ID) {
		ctx.Debug.DefenseState = fmt.Sprintf("Asylum (%d injured)", metrics.Injured)
		return true
	}
	return false
}

// tryTemperance is the full party cooldown, the broadest and last resort.
func (d *Defensive) tryTemperance(ctx *Context, metrics game.PartyHealthMetrics) bool {
	cfg := ctx.Cfg.Rotation.Defensive.Temperance
	if !cfg.Enabled || metrics.Average > cfg.Threshold {
		return false
	}

	player := ctx.Data.PlayerUnit
	temperance, _ := ctx.Catalog.ByID(data.Temperance)
	if !unlocked(temperance, player) || !ctx.Cooldowns.IsReady(temperance.ID) || ctx.Held(temperance) {
		return false
	}

	if d.execute(ctx, temperance, player.ID) {
		ctx.Debug.DefenseState = fmt.Sprintf("Temperance (avg %.0f%%)", metrics.Average*100)
		return true
	}
	return false
}
