package rotation

import (
	"time"

	"github.com/isleen/lilybot/internal/config"
	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/game"
)

// CooldownTracker reports recast state. The host owns cooldown bookkeeping;
// modules only ask.
type CooldownTracker interface {
	IsReady(id data.AbilityID) bool
	Remaining(id data.AbilityID) time.Duration
}

// Executor issues actions to the host. A false return means the host did not
// accept the action; the module must not claim success for it.
type Executor interface {
	ExecuteGcd(ability data.AbilityRecord, target game.UnitID) bool
	ExecuteOgcd(ability data.AbilityRecord, target game.UnitID) bool
	ExecuteGroundOgcd(ability data.AbilityRecord, position game.Position) bool
}

// Context is the per-tick decision snapshot. The host builds one per pass,
// the modules borrow it, and it is discarded afterwards. Nothing in it
// survives to the next tick.
type Context struct {
	Data *game.Data
	Cfg  *config.CharacterCfg

	InCombat       bool
	IsMoving       bool
	CanExecuteGcd  bool
	CanExecuteOgcd bool

	Cooldowns CooldownTracker
	Executor  Executor
	Rules     *HoldRules

	Catalog *data.Catalog
	Debug   *Debug
}

// Held reports whether a user hold rule suppresses this ability for the
// current tick.
func (c *Context) Held(ability data.AbilityRecord) bool {
	if c.Rules == nil {
		return false
	}

	return c.Rules.Held(ability.Name, RuleEnv{
		Level:        c.Data.PlayerUnit.Level,
		MPPercent:    c.Data.PlayerUnit.MPPercent(),
		Lilies:       c.Data.PlayerUnit.Gauge.Lilies,
		BloodLily:    c.Data.PlayerUnit.Gauge.BloodLily,
		PartyAverage: c.Data.HealthMetrics(c.Cfg.Rotation.InjuredThreshold).Average,
		Enemies:      len(c.Data.Enemies),
		InCombat:     c.InCombat,
		Moving:       c.IsMoving,
	})
}

// unlocked is the level-gate check every ability selection goes through.
func unlocked(ability data.AbilityRecord, player game.Player) bool {
	return player.Level >= ability.MinLevel
}
