package sim

import (
	"time"

	"github.com/isleen/lilybot/internal/data"
)

// Cooldowns tracks recast readiness against the simulated clock. Implements
// the engine's CooldownTracker.
type Cooldowns struct {
	now     func() time.Duration
	readyAt map[data.AbilityID]time.Duration
}

func NewCooldowns(now func() time.Duration) *Cooldowns {
	return &Cooldowns{
		now:     now,
		readyAt: make(map[data.AbilityID]time.Duration),
	}
}

func (c *Cooldowns) IsReady(id data.AbilityID) bool {
	return c.now() >= c.readyAt[id]
}

func (c *Cooldowns) Remaining(id data.AbilityID) time.Duration {
	remaining := c.readyAt[id] - c.now()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Trigger starts the recast timer for an ability.
func (c *Cooldowns) Trigger(ability data.AbilityRecord) {
	if ability.Category == data.CategoryOGCD && ability.RecastTime > 0 {
		c.readyAt[ability.ID] = c.now() + ability.RecastTime
	}
}
