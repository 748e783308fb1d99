package rotation

import (
	"fmt"
	"log/slog"

	"github.com/isleen/lilybot/internal/data"
)

// Resurrection raises a dead party member when safe and resourced to do so.
// It prefers weaving Swiftcast so the following GCD pass can raise instantly;
// hardcasting is the stationary fallback.
type Resurrection struct {
	baseModule
}

func NewResurrection(logger *slog.Logger) *Resurrection {
	return &Resurrection{baseModule{logger: logger}}
}

func (r *Resurrection) Name() string  { return "Resurrection" }
func (r *Resurrection) Priority() int { return PriorityResurrection }

func (r *Resurrection) TryExecute(ctx *Context, isMoving bool) bool {
	r.mustContext(ctx)
	cfg := ctx.Cfg.Rotation.Raise

	if !cfg.Enabled {
		ctx.Debug.RaiseState = "Disabled"
		return false
	}

	member, found := ctx.Data.DeadMemberNeedingRaise()
	if !found {
		ctx.Debug.RaiseState = "No one to raise"
		return false
	}

	player := ctx.Data.PlayerUnit
	raise, found := ctx.Catalog.ByID(data.Raise)
	if !found || !unlocked(raise, player) {
		ctx.Debug.RaiseState = fmt.Sprintf("Level %d < %d", player.Level, raise.MinLevel)
		return false
	}
	if ctx.Held(raise) {
		ctx.Debug.RaiseState = "Held by rule"
		return false
	}

	if player.MP < raise.MPCost {
		ctx.Debug.RaiseState = fmt.Sprintf("MP %d < cost %d", player.MP, raise.MPCost)
		return false
	}
	if player.MPPercent() < cfg.MpThreshold {
		ctx.Debug.RaiseState = fmt.Sprintf("MP %.0f%% < min %.0f%%", player.MPPercent()*100, cfg.MpThreshold*100)
		return false
	}

	// Weave Swiftcast first so the next GCD pass raises instantly.
	swiftcast, _ := ctx.Catalog.ByID(data.Swiftcast)
	if cfg.UseSwiftcast && ctx.CanExecuteOgcd && unlocked(swiftcast, player) &&
		!player.HasStatus(data.StatusSwiftcast) && ctx.Cooldowns.IsReady(swiftcast.ID) {
		if r.execute(ctx, swiftcast, player.ID) {
			ctx.Debug.RaiseState = "Swiftcast for " + member.Name
			return true
		}
	}

	if ctx.CanExecuteGcd {
		// With Swiftcast up the raise is instant, movement included.
		if player.HasStatus(data.StatusSwiftcast) {
			if r.execute(ctx, raise, member.ID) {
				ctx.Debug.RaiseState = "Raising " + member.Name
				return true
			}
			ctx.Debug.RaiseState = "Raise not confirmed"
			return false
		}
		if cfg.AllowHardcast && !isMoving {
			if r.execute(ctx, raise, member.ID) {
				ctx.Debug.RaiseState = "Hardcasting raise on " + member.Name
				return true
			}
			ctx.Debug.RaiseState = "Raise not confirmed"
			return false
		}
		if isMoving {
			ctx.Debug.RaiseState = "Moving"
			return false
		}
		ctx.Debug.RaiseState = "Hardcast disabled"
		return false
	}

	ctx.Debug.RaiseState = "Waiting for cast window"
	return false
}
