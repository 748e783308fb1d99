package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isleen/lilybot/internal/config"
	"github.com/isleen/lilybot/internal/event"
)

func TestManagerStartUnknownCharacter(t *testing.T) {
	config.Characters = nil
	m := NewManager(testLogger(), event.NewListener(testLogger()))

	_, err := m.Start("nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody")
}

func TestManagerRunsSessionToCompletion(t *testing.T) {
	dir := t.TempDir()
	encPath := filepath.Join(dir, "enc.yaml")
	require.NoError(t, os.WriteFile(encPath, []byte(`
name: quick pull
duration: 5s
player:
  name: healer
  level: 90
  maxhp: 60000
  maxmp: 10000
enemies:
  - name: boss
    maxhp: 100000
`), 0o644))

	cfg := config.DefaultCharacterCfg()
	cfg.Encounter = encPath
	config.Characters = map[string]*config.CharacterCfg{"liliane": cfg}
	t.Cleanup(func() { config.Characters = nil })

	m := NewManager(testLogger(), event.NewListener(testLogger()))
	id, err := m.Start("liliane")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// The session runs unpaced, so it finishes almost immediately.
	require.Eventually(t, func() bool {
		return len(m.Reports()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	report := m.Reports()[0]
	assert.Equal(t, "quick pull", report.Encounter)
	assert.Positive(t, report.TotalDamage)
	assert.Empty(t, m.Status())
}

func TestManagerStopCancelsSession(t *testing.T) {
	dir := t.TempDir()
	encPath := filepath.Join(dir, "enc.yaml")
	require.NoError(t, os.WriteFile(encPath, []byte(`
name: endless
duration: 10h
player:
  name: healer
  level: 90
  maxhp: 60000
  maxmp: 10000
enemies:
  - name: boss
    maxhp: 100000
`), 0o644))

	cfg := config.DefaultCharacterCfg()
	cfg.Encounter = encPath
	config.Characters = map[string]*config.CharacterCfg{"liliane": cfg}
	config.Lilybot = &config.LilybotCfg{}
	config.Lilybot.Simulation.Realtime = true
	t.Cleanup(func() {
		config.Characters = nil
		config.Lilybot = nil
	})

	m := NewManager(testLogger(), event.NewListener(testLogger()))
	id, err := m.Start("liliane")
	require.NoError(t, err)

	require.Len(t, m.Status(), 1)
	require.NoError(t, m.Stop(id))

	require.Eventually(t, func() bool {
		return len(m.Status()) == 0
	}, 5*time.Second, 10*time.Millisecond)

	assert.Error(t, m.Stop(id))
}