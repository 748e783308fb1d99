package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadReadsGlobalAndProfiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lilybot.yaml"), `
debug:
  log: true
logSaveDirectory: mylogs
server:
  port: 9000
`)
	writeFile(t, filepath.Join(dir, "liliane", "character.yaml"), `
job: WhiteMage
encounter: enc.yaml
rotation:
  raise:
    enabled: false
`)

	require.NoError(t, Load(dir))

	assert.True(t, Lilybot.Debug.Log)
	assert.Equal(t, "mylogs", Lilybot.LogSaveDirectory)
	assert.Equal(t, 9000, Lilybot.Server.Port)

	require.Contains(t, Characters, "liliane")
	cfg := Characters["liliane"]
	assert.Equal(t, "enc.yaml", cfg.Encounter)
	assert.False(t, cfg.Rotation.Raise.Enabled)
	// Untouched sections keep their defaults.
	assert.True(t, cfg.Rotation.Healing.Enabled)
	assert.InDelta(t, 0.30, cfg.Rotation.Healing.Benediction.Threshold, 0.001)
}

func TestLoadSeedsFromTemplate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "template", "lilybot.yaml"), `
server:
  port: 8087
`)
	writeFile(t, filepath.Join(dir, "template", "whitemage", "character.yaml"), `
job: WhiteMage
encounter: enc.yaml
`)

	require.NoError(t, Load(dir))

	assert.Equal(t, 8087, Lilybot.Server.Port)
	assert.Contains(t, Characters, "whitemage")

	// The seeded copy lands next to the template.
	_, err := os.Stat(filepath.Join(dir, "lilybot.yaml"))
	assert.NoError(t, err)
}

func TestLoadSkipsDirectoriesWithoutProfiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lilybot.yaml"), "server:\n  port: 8087\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "encounters"), 0o755))

	require.NoError(t, Load(dir))
	assert.Empty(t, Characters)
}

func TestLoadCharacterRejectsBrokenYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "character.yaml")
	writeFile(t, path, "job: [broken")

	_, err := LoadCharacter(path)
	require.Error(t, err)
}

func TestDefaultCharacterCfg(t *testing.T) {
	cfg := DefaultCharacterCfg()

	assert.Equal(t, "WhiteMage", cfg.Job)
	assert.InDelta(t, 0.85, cfg.Rotation.InjuredThreshold, 0.001)
	assert.True(t, cfg.Rotation.Raise.UseSwiftcast)
	assert.InDelta(t, 0.30, cfg.Rotation.Raise.MpThreshold, 0.001)
	assert.Equal(t, 3, cfg.Rotation.Healing.AoE.MinTargets)
	assert.Equal(t, 3*time.Second, cfg.Rotation.Healing.Regen.RefreshBuffer)
	assert.Equal(t, "nearest", cfg.Rotation.Damage.TargetStrategy)
	assert.False(t, cfg.Rotation.Buffs.Surecast.Enabled)
	assert.False(t, cfg.Rotation.Buffs.Sprint.Enabled)
}
