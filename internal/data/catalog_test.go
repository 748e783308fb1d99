package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	catalog := WhiteMageCatalog()

	record, found := catalog.ByID(Benediction)
	require.True(t, found)
	assert.Equal(t, "Benediction", record.Name)
	assert.Equal(t, CategoryOGCD, record.Category)

	_, found = catalog.ByID(AbilityID(999999))
	assert.False(t, found)
}

func TestBestAtLevelPicksStrongestUnlocked(t *testing.T) {
	catalog := WhiteMageCatalog()

	cases := []struct {
		name   string
		family Family
		level  int
		want   AbilityID
	}{
		{"single damage at 1", FamilySingleDamage, 1, Stone},
		{"single damage at 53", FamilySingleDamage, 53, StoneII},
		{"single damage at 54", FamilySingleDamage, 54, StoneIII},
		{"single damage at 90", FamilySingleDamage, 90, GlareIII},
		{"dot at 4", FamilyDamageOverTime, 4, Aero},
		{"dot at 71", FamilyDamageOverTime, 71, AeroII},
		{"dot at 72", FamilyDamageOverTime, 72, Dia},
		{"single heal at 2", FamilySingleHeal, 2, Cure},
		{"single heal at 90", FamilySingleHeal, 90, CureII},
		{"aoe heal at 10", FamilyAoEHeal, 10, Medica},
		{"aoe heal at 50", FamilyAoEHeal, 50, MedicaII},
		{"aoe damage at 45", FamilyAoEDamage, 45, Holy},
		{"aoe damage at 82", FamilyAoEDamage, 82, HolyIII},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record, found := catalog.BestAtLevel(tc.family, tc.level)
			require.True(t, found)
			assert.Equal(t, tc.want, record.ID)
		})
	}
}

func TestBestAtLevelNothingUnlocked(t *testing.T) {
	catalog := WhiteMageCatalog()

	_, found := catalog.BestAtLevel(FamilyAoEDamage, 44) // Holy unlocks at 45
	assert.False(t, found)
}

func TestIsInstant(t *testing.T) {
	catalog := WhiteMageCatalog()

	aero, _ := catalog.ByID(Aero)
	assert.True(t, aero.IsInstant())

	cure, _ := catalog.ByID(Cure)
	assert.False(t, cure.IsInstant())
}

func TestEffectBitset(t *testing.T) {
	catalog := WhiteMageCatalog()

	assize, _ := catalog.ByID(Assize)
	assert.True(t, assize.Effects.Has(EffectDamage))
	assert.True(t, assize.Effects.Has(EffectHeal))
	assert.True(t, assize.Effects.Has(EffectManaRestore))
	assert.False(t, assize.Effects.Has(EffectRaise))
}

func TestRaiseCostsAreCarried(t *testing.T) {
	catalog := WhiteMageCatalog()

	raise, found := catalog.ByID(Raise)
	require.True(t, found)
	assert.Equal(t, 12, raise.MinLevel)
	assert.Equal(t, 2400, raise.MPCost)
	assert.False(t, raise.IsInstant())
}
