package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/isleen/lilybot/internal/data"
)

func TestCooldownsTriggerAndRecover(t *testing.T) {
	clock := time.Duration(0)
	cds := NewCooldowns(func() time.Duration { return clock })

	catalog := data.WhiteMageCatalog()
	assize, _ := catalog.ByID(data.Assize)

	assert.True(t, cds.IsReady(assize.ID))
	assert.Zero(t, cds.Remaining(assize.ID))

	cds.Trigger(assize)
	assert.False(t, cds.IsReady(assize.ID))
	assert.Equal(t, 40*time.Second, cds.Remaining(assize.ID))

	clock = 39 * time.Second
	assert.False(t, cds.IsReady(assize.ID))
	assert.Equal(t, time.Second, cds.Remaining(assize.ID))

	clock = 40 * time.Second
	assert.True(t, cds.IsReady(assize.ID))
	assert.Zero(t, cds.Remaining(assize.ID))
}

func TestCooldownsIgnoreGcdActions(t *testing.T) {
	clock := time.Duration(0)
	cds := NewCooldowns(func() time.Duration { return clock })

	catalog := data.WhiteMageCatalog()
	glare, _ := catalog.ByID(data.GlareIII)

	// GCD actions share the global recast; the tracker leaves them alone.
	cds.Trigger(glare)
	assert.True(t, cds.IsReady(glare.ID))
}
