package rotation

import (
	"io"
	"log/slog"
	"time"

	"github.com/isleen/lilybot/internal/config"
	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/game"
)

// fakeExecutor records every execution request and accepts them all unless
// reject is set.
type fakeExecutor struct {
	gcd    []data.AbilityID
	ogcd   []data.AbilityID
	ground []data.AbilityID
	reject bool
}

func (f *fakeExecutor) ExecuteGcd(ability data.AbilityRecord, target game.UnitID) bool {
	if f.reject {
		return false
	}
	f.gcd = append(f.gcd, ability.ID)
	return true
}

func (f *fakeExecutor) ExecuteOgcd(ability data.AbilityRecord, target game.UnitID) bool {
	if f.reject {
		return false
	}
	f.ogcd = append(f.ogcd, ability.ID)
	return true
}

func (f *fakeExecutor) ExecuteGroundOgcd(ability data.AbilityRecord, position game.Position) bool {
	if f.reject {
		return false
	}
	f.ground = append(f.ground, ability.ID)
	return true
}

func (f *fakeExecutor) total() int {
	return len(f.gcd) + len(f.ogcd) + len(f.ground)
}

// fakeCooldowns reports everything ready except the entries in onCooldown.
type fakeCooldowns struct {
	onCooldown map[data.AbilityID]time.Duration
}

func (f *fakeCooldowns) IsReady(id data.AbilityID) bool {
	return f.onCooldown[id] == 0
}

func (f *fakeCooldowns) Remaining(id data.AbilityID) time.Duration {
	return f.onCooldown[id]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds a healthy max-level snapshot in combat with one
// enemy, both execution tracks open.
func newTestContext() *Context {
	party := []game.PartyMember{
		{ID: 1, Name: "Liliane", HP: 68000, MaxHP: 68000},
		{ID: 2, Name: "Grimaud", HP: 92000, MaxHP: 92000},
		{ID: 3, Name: "Ysolde", HP: 71000, MaxHP: 71000},
		{ID: 4, Name: "Thancrel", HP: 70000, MaxHP: 70000},
	}

	return &Context{
		Data: &game.Data{
			PlayerUnit: game.Player{
				ID:    1,
				Name:  "Liliane",
				Job:   game.JobWhiteMage,
				Level: 90,
				HP:    68000,
				MaxHP: 68000,
				MP:    10000,
				MaxMP: 10000,
			},
			Party: party,
			Enemies: []game.Enemy{
				{ID: 10, Name: "Temple Guardian", HP: 500000, MaxHP: 500000, Position: game.Position{X: 5}},
			},
		},
		Cfg:            config.DefaultCharacterCfg(),
		InCombat:       true,
		CanExecuteGcd:  true,
		CanExecuteOgcd: true,
		Cooldowns:      &fakeCooldowns{onCooldown: map[data.AbilityID]time.Duration{}},
		Executor:       &fakeExecutor{},
		Catalog:        data.WhiteMageCatalog(),
		Debug:          &Debug{},
	}
}

func executor(ctx *Context) *fakeExecutor {
	return ctx.Executor.(*fakeExecutor)
}

func cooldowns(ctx *Context) *fakeCooldowns {
	return ctx.Cooldowns.(*fakeCooldowns)
}
