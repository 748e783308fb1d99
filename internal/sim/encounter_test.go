package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEncounter() *Encounter {
	return &Encounter{
		Name:     "test",
		Duration: time.Minute,
		Player:   PlayerSetup{Name: "healer", Level: 90, MaxHP: 60000, MaxMP: 10000},
		Party: []MemberSetup{
			{Name: "tank", MaxHP: 90000},
		},
		Enemies: []EnemySetup{
			{Name: "boss", MaxHP: 1000000},
		},
		Events: []ScriptedEvent{
			{At: 10 * time.Second, Kind: "raidwide", Amount: 10000},
		},
	}
}

func TestValidateAcceptsWellFormedEncounter(t *testing.T) {
	require.NoError(t, validEncounter().Validate())
}

func TestValidateRejectsBadEncounters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Encounter)
	}{
		{"zero duration", func(e *Encounter) { e.Duration = 0 }},
		{"player without hp", func(e *Encounter) { e.Player.MaxHP = 0 }},
		{"player without level", func(e *Encounter) { e.Player.Level = 0 }},
		{"member without hp", func(e *Encounter) { e.Party[0].MaxHP = 0 }},
		{"enemy without hp", func(e *Encounter) { e.Enemies[0].MaxHP = 0 }},
		{"unknown event kind", func(e *Encounter) { e.Events[0].Kind = "meteor" }},
		{"unknown target", func(e *Encounter) {
			e.Events[0] = ScriptedEvent{At: time.Second, Kind: "kill", Target: "nobody"}
		}},
		{"event after the end", func(e *Encounter) { e.Events[0].At = 2 * time.Minute }},
		{"negative event time", func(e *Encounter) { e.Events[0].At = -time.Second }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc := validEncounter()
			tc.mutate(enc)
			assert.Error(t, enc.Validate())
		})
	}
}

func TestValidateAllowsTargetedEventsOnAnyKnownUnit(t *testing.T) {
	enc := validEncounter()
	enc.Events = append(enc.Events,
		ScriptedEvent{At: 5 * time.Second, Kind: "tankbuster", Target: "tank", Amount: 100},
		ScriptedEvent{At: 6 * time.Second, Kind: "debuff", Target: "healer", Duration: 10 * time.Second},
	)
	require.NoError(t, enc.Validate())
}

func TestLoadEncounterSortsEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: out of order
duration: 1m
player:
  name: healer
  level: 90
  maxhp: 60000
  maxmp: 10000
enemies:
  - name: boss
    maxhp: 100000
events:
  - at: 30s
    kind: raidwide
    amount: 5000
  - at: 10s
    kind: raidwide
    amount: 3000
`), 0o644))

	enc, err := LoadEncounter(path)
	require.NoError(t, err)
	require.Len(t, enc.Events, 2)
	assert.Equal(t, 10*time.Second, enc.Events[0].At)
	assert.Equal(t, 30*time.Second, enc.Events[1].At)
}

func TestLoadEncounterMissingFile(t *testing.T) {
	_, err := LoadEncounter(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestBundledEncountersAreValid(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("..", "..", "config", "encounters", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, path := range matches {
		_, err := LoadEncounter(path)
		assert.NoError(t, err, path)
	}
}
