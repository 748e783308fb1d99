package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/game"
)

func killMember(ctx *Context, index int) {
	ctx.Data.Party[index].Dead = true
	ctx.Data.Party[index].HP = 0
}

func TestResurrectionWeavesSwiftcastFirst(t *testing.T) {
	ctx := newTestContext()
	killMember(ctx, 2)

	acted := NewResurrection(testLogger()).TryExecute(ctx, false)

	require.True(t, acted)
	assert.Equal(t, []data.AbilityID{data.Swiftcast}, executor(ctx).ogcd)
	assert.Empty(t, executor(ctx).gcd)
	assert.Equal(t, "Swiftcast for Ysolde", ctx.Debug.RaiseState)
}

func TestResurrectionRaisesInstantlyUnderSwiftcast(t *testing.T) {
	ctx := newTestContext()
	killMember(ctx, 2)
	ctx.Data.PlayerUnit.Statuses = []game.Status{{ID: data.StatusSwiftcast}}

	// Instant under Swiftcast, so movement must not block it.
	acted := NewResurrection(testLogger()).TryExecute(ctx, true)

	require.True(t, acted)
	assert.Equal(t, []data.AbilityID{data.Raise}, executor(ctx).gcd)
	assert.Empty(t, executor(ctx).ogcd)
}

func TestResurrectionHardcastsWhenSwiftcastUnavailable(t *testing.T) {
	ctx := newTestContext()
	killMember(ctx, 2)
	ctx.CanExecuteOgcd = false

	acted := NewResurrection(testLogger()).TryExecute(ctx, false)

	require.True(t, acted)
	assert.Equal(t, []data.AbilityID{data.Raise}, executor(ctx).gcd)
}

func TestResurrectionHardcastBlockedWhileMoving(t *testing.T) {
	ctx := newTestContext()
	killMember(ctx, 2)
	ctx.CanExecuteOgcd = false

	acted := NewResurrection(testLogger()).TryExecute(ctx, true)

	assert.False(t, acted)
	assert.Zero(t, executor(ctx).total())
	assert.Equal(t, "Moving", ctx.Debug.RaiseState)
}

func TestResurrectionHardcastDisabledByConfig(t *testing.T) {
	ctx := newTestContext()
	killMember(ctx, 2)
	ctx.CanExecuteOgcd = false
	ctx.Cfg.Rotation.Raise.AllowHardcast = false

	acted := NewResurrection(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.Equal(t, "Hardcast disabled", ctx.Debug.RaiseState)
}

func TestResurrectionLevelGate(t *testing.T) {
	ctx := newTestContext()
	killMember(ctx, 2)
	ctx.Data.PlayerUnit.Level = 11 // one level short of Raise

	acted := NewResurrection(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.Zero(t, executor(ctx).total())
	assert.Equal(t, "Level 11 < 12", ctx.Debug.RaiseState)

	// Exactly at the unlock level it goes through.
	ctx.Data.PlayerUnit.Level = 12
	ctx.CanExecuteOgcd = false
	acted = NewResurrection(testLogger()).TryExecute(ctx, false)
	assert.True(t, acted)
}

func TestResurrectionMpGates(t *testing.T) {
	ctx := newTestContext()
	killMember(ctx, 2)

	// Below the literal cost nothing happens.
	ctx.Data.PlayerUnit.MP = 2000
	acted := NewResurrection(testLogger()).TryExecute(ctx, false)
	assert.False(t, acted)
	assert.Equal(t, "MP 2000 < cost 2400", ctx.Debug.RaiseState)

	// Above the cost but under the configured reserve fraction.
	ctx.Data.PlayerUnit.MP = 2500 // 25% of 10000, reserve is 30%
	acted = NewResurrection(testLogger()).TryExecute(ctx, false)
	assert.False(t, acted)
	assert.Zero(t, executor(ctx).total())
}

func TestResurrectionSkipsAlreadyRaisedMembers(t *testing.T) {
	ctx := newTestContext()
	killMember(ctx, 2)
	ctx.Data.Party[2].Raised = true

	acted := NewResurrection(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.Equal(t, "No one to raise", ctx.Debug.RaiseState)
}

func TestResurrectionHeldByRule(t *testing.T) {
	ctx := newTestContext()
	killMember(ctx, 2)

	rules, err := CompileHoldRules(map[string]string{"Raise": "true"})
	require.NoError(t, err)
	ctx.Rules = rules

	acted := NewResurrection(testLogger()).TryExecute(ctx, false)

	assert.False(t, acted)
	assert.Equal(t, "Held by rule", ctx.Debug.RaiseState)
}
