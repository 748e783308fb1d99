package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isleen/lilybot/internal/game"
)

func TestBuildModulesWhiteMage(t *testing.T) {
	modules, err := BuildModules(game.JobWhiteMage, testLogger())
	require.NoError(t, err)
	require.Len(t, modules, 5)

	names := make([]string, 0, len(modules))
	for _, m := range modules {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"Resurrection", "Healing", "Defensive", "Buffs", "Damage"}, names)
}

func TestBuildModulesConjurerSharesTheSet(t *testing.T) {
	modules, err := BuildModules(game.JobConjurer, testLogger())
	require.NoError(t, err)
	assert.Len(t, modules, 5)
}

func TestBuildModulesUnknownJob(t *testing.T) {
	_, err := BuildModules(game.Job("Necromancer"), testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Necromancer")
}
