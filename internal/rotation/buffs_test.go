package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/game"
)

func TestBuffsRequireWeaveWindow(t *testing.T) {
	ctx := newTestContext()
	ctx.CanExecuteOgcd = false

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.Equal(t, "No weave window", ctx.Debug.BuffState)
}

func TestPresenceOfMindUsedOnCooldownInCombat(t *testing.T) {
	ctx := newTestContext()

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	require.True(t, acted)
	assert.Equal(t, []data.AbilityID{data.PresenceOfMind}, executor(ctx).ogcd)
	assert.Equal(t, "Presence of Mind", ctx.Debug.BuffState)
}

func TestPresenceOfMindSkippedOutOfCombat(t *testing.T) {
	ctx := newTestContext()
	ctx.InCombat = false

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.NotContains(t, executor(ctx).ogcd, data.PresenceOfMind)
}

func TestPresenceOfMindNotReappliedWhileActive(t *testing.T) {
	ctx := newTestContext()
	ctx.Data.PlayerUnit.Statuses = []game.Status{
		{ID: data.StatusPresenceOfMind, Remaining: 10 * time.Second},
	}
	ctx.Cfg.Rotation.Buffs.Assize.Enabled = false

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.Zero(t, executor(ctx).total())
}

func TestAssizeUsedWithEnemiesInRange(t *testing.T) {
	ctx := newTestContext()
	cooldowns(ctx).onCooldown[data.PresenceOfMind] = 60 * time.Second

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	require.True(t, acted)
	assert.Equal(t, []data.AbilityID{data.Assize}, executor(ctx).ogcd)
	assert.Equal(t, "Assize (1 in range)", ctx.Debug.BuffState)
}

func TestAssizeHeldWithNoTargetsAndHealthyMp(t *testing.T) {
	ctx := newTestContext()
	cooldowns(ctx).onCooldown[data.PresenceOfMind] = 60 * time.Second
	ctx.Data.Enemies[0].Position = game.Position{X: 40} // out of the 15y radius

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.NotContains(t, executor(ctx).ogcd, data.Assize)
}

func TestAssizeUsedForMpRefundEvenWithoutTargets(t *testing.T) {
	ctx := newTestContext()
	cooldowns(ctx).onCooldown[data.PresenceOfMind] = 60 * time.Second
	ctx.Data.Enemies[0].Position = game.Position{X: 40}
	ctx.Data.PlayerUnit.MP = 5000 // under the 80% assize threshold

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	require.True(t, acted)
	assert.Equal(t, []data.AbilityID{data.Assize}, executor(ctx).ogcd)
}

func TestLucidDreamingRecoversLowMp(t *testing.T) {
	ctx := newTestContext()
	cooldowns(ctx).onCooldown[data.PresenceOfMind] = 60 * time.Second
	cooldowns(ctx).onCooldown[data.Assize] = 20 * time.Second
	ctx.Data.PlayerUnit.MP = 5000

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	require.True(t, acted)
	assert.Equal(t, []data.AbilityID{data.LucidDreaming}, executor(ctx).ogcd)
}

func TestLucidDreamingNotUsedAtHealthyMp(t *testing.T) {
	ctx := newTestContext()
	cooldowns(ctx).onCooldown[data.PresenceOfMind] = 60 * time.Second
	cooldowns(ctx).onCooldown[data.Assize] = 20 * time.Second

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.NotContains(t, executor(ctx).ogcd, data.LucidDreaming)
}

func TestThinAirSavedForPendingRaise(t *testing.T) {
	ctx := newTestContext()
	cooldowns(ctx).onCooldown[data.PresenceOfMind] = 60 * time.Second
	cooldowns(ctx).onCooldown[data.Assize] = 20 * time.Second

	// No one is dead: Thin Air stays banked.
	acted := NewBuffs(testLogger()).TryExecute(ctx, false)
	assert.False(t, acted)

	killMember(ctx, 2)
	acted = NewBuffs(testLogger()).TryExecute(ctx, false)
	require.True(t, acted)
	assert.Contains(t, executor(ctx).ogcd, data.ThinAir)
	assert.Equal(t, "Thin Air before raise", ctx.Debug.BuffState)
}

func TestSurecastDisabledByDefault(t *testing.T) {
	ctx := newTestContext()
	cooldowns(ctx).onCooldown[data.PresenceOfMind] = 60 * time.Second
	cooldowns(ctx).onCooldown[data.Assize] = 20 * time.Second

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.NotContains(t, executor(ctx).ogcd, data.Surecast)
}

func TestSurecastKeptUpInCombat(t *testing.T) {
	ctx := newTestContext()
	ctx.Cfg.Rotation.Buffs.Surecast.Enabled = true
	cooldowns(ctx).onCooldown[data.PresenceOfMind] = 60 * time.Second
	cooldowns(ctx).onCooldown[data.Assize] = 20 * time.Second

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	require.True(t, acted)
	assert.Equal(t, []data.AbilityID{data.Surecast}, executor(ctx).ogcd)
	assert.Equal(t, "Surecast", ctx.Debug.BuffState)
}

func TestSurecastNotReappliedWhileActive(t *testing.T) {
	ctx := newTestContext()
	ctx.Cfg.Rotation.Buffs.Surecast.Enabled = true
	cooldowns(ctx).onCooldown[data.PresenceOfMind] = 60 * time.Second
	cooldowns(ctx).onCooldown[data.Assize] = 20 * time.Second
	ctx.Data.PlayerUnit.Statuses = []game.Status{
		{ID: data.StatusSurecast, Remaining: 4 * time.Second},
	}

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.Zero(t, executor(ctx).total())
}

func TestSurecastSkippedOutOfCombat(t *testing.T) {
	ctx := newTestContext()
	ctx.InCombat = false
	ctx.Cfg.Rotation.Buffs.Surecast.Enabled = true

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.NotContains(t, executor(ctx).ogcd, data.Surecast)
}

func TestSprintOnlyWhileMoving(t *testing.T) {
	ctx := newTestContext()
	ctx.InCombat = false
	ctx.Cfg.Rotation.Buffs.Sprint.Enabled = true

	acted := NewBuffs(testLogger()).TryExecute(ctx, false)
	assert.False(t, acted)

	acted = NewBuffs(testLogger()).TryExecute(ctx, true)
	require.True(t, acted)
	assert.Equal(t, []data.AbilityID{data.Sprint}, executor(ctx).ogcd)
}
