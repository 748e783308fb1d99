package data

import "time"

// White Mage / Conjurer action IDs, matching the client's action sheet.
const (
	Stone             AbilityID = 119
	Cure              AbilityID = 120
	Aero              AbilityID = 121
	Medica            AbilityID = 124
	Raise             AbilityID = 125
	StoneII           AbilityID = 127
	CureIII           AbilityID = 131
	AeroII            AbilityID = 132
	MedicaII          AbilityID = 133
	CureII            AbilityID = 135
	Regen             AbilityID = 137
	Holy              AbilityID = 139
	Benediction       AbilityID = 140
	StoneIII          AbilityID = 3568
	Asylum            AbilityID = 3569
	Tetragrammaton    AbilityID = 3570
	Assize            AbilityID = 3571
	ThinAir           AbilityID = 7430
	StoneIV           AbilityID = 7431
	DivineBenison     AbilityID = 7432
	PlenaryIndulgence AbilityID = 7433
	Dia               AbilityID = 16532
	Glare             AbilityID = 16533
	AfflatusSolace    AbilityID = 16531
	AfflatusRapture   AbilityID = 16534
	AfflatusMisery    AbilityID = 16535
	Temperance        AbilityID = 16536
	GlareIII          AbilityID = 25859
	HolyIII           AbilityID = 25860
	Aquaveil          AbilityID = 25861

	// Role and general actions.
	Sprint         AbilityID = 3
	Esuna          AbilityID = 7568
	Swiftcast      AbilityID = 7561
	LucidDreaming  AbilityID = 7562
	Surecast       AbilityID = 7559
	PresenceOfMind AbilityID = 136
)

// Status IDs applied by the abilities above.
const (
	StatusAero            StatusID = 143
	StatusAeroII          StatusID = 144
	StatusMedicaII        StatusID = 150
	StatusRegen           StatusID = 158
	StatusPresenceOfMind  StatusID = 157
	StatusSwiftcast       StatusID = 167
	StatusLucidDreaming   StatusID = 1204
	StatusDivineBenison   StatusID = 1218
	StatusThinAir         StatusID = 1217
	StatusConfession      StatusID = 1219
	StatusDia             StatusID = 1871
	StatusTemperance      StatusID = 1872
	StatusAquaveil        StatusID = 2708
	StatusSprint          StatusID = 50
	StatusSurecast        StatusID = 160
	StatusAsylum          StatusID = 1911
)

// WhiteMageCatalog builds the full Conjurer/White Mage ability table. The
// same table serves both jobs since White Mage is the Conjurer upgrade.
func WhiteMageCatalog() *Catalog {
	sec := func(n float64) time.Duration { return time.Duration(n * float64(time.Second)) }

	return NewCatalog([]AbilityRecord{
		// Single-target damage line.
		{ID: Stone, Name: "Stone", MinLevel: 1, Category: CategoryGCD, Target: TargetSingleEnemy, Family: FamilySingleDamage, CastTime: sec(1.5), RecastTime: sec(2.5), Range: 25, MPCost: 400, Effects: EffectDamage},
		{ID: StoneII, Name: "Stone II", MinLevel: 18, Category: CategoryGCD, Target: TargetSingleEnemy, Family: FamilySingleDamage, CastTime: sec(1.5), RecastTime: sec(2.5), Range: 25, MPCost: 400, Effects: EffectDamage},
		{ID: StoneIII, Name: "Stone III", MinLevel: 54, Category: CategoryGCD, Target: TargetSingleEnemy, Family: FamilySingleDamage, CastTime: sec(1.5), RecastTime: sec(2.5), Range: 25, MPCost: 400, Effects: EffectDamage},
		{ID: StoneIV, Name: "Stone IV", MinLevel: 64, Category: CategoryGCD, Target: TargetSingleEnemy, Family: FamilySingleDamage, CastTime: sec(1.5), RecastTime: sec(2.5), Range: 25, MPCost: 400, Effects: EffectDamage},
		{ID: Glare, Name: "Glare", MinLevel: 72, Category: CategoryGCD, Target: TargetSingleEnemy, Family: FamilySingleDamage, CastTime: sec(1.5), RecastTime: sec(2.5), Range: 25, MPCost: 400, Effects: EffectDamage},
		{ID: GlareIII, Name: "Glare III", MinLevel: 82, Category: CategoryGCD, Target: TargetSingleEnemy, Family: FamilySingleDamage, CastTime: sec(1.5), RecastTime: sec(2.5), Range: 25, MPCost: 400, Effects: EffectDamage},

		// Damage-over-time line. Aero hardcasts at low level, Dia is instant.
		{ID: Aero, Name: "Aero", MinLevel: 4, Category: CategoryGCD, Target: TargetSingleEnemy, Family: FamilyDamageOverTime, CastTime: 0, RecastTime: sec(2.5), Range: 25, MPCost: 400, Effects: EffectDamage | EffectDamageOverTime, StatusID: StatusAero, StatusDuration: 18 * time.Second},
		{ID: AeroII, Name: "Aero II", MinLevel: 46, Category: CategoryGCD, Target: TargetSingleEnemy, Family: FamilyDamageOverTime, CastTime: 0, RecastTime: sec(2.5), Range: 25, MPCost: 400, Effects: EffectDamage | EffectDamageOverTime, StatusID: StatusAeroII, StatusDuration: 18 * time.Second},
		{ID: Dia, Name: "Dia", MinLevel: 72, Category: CategoryGCD, Target: TargetSingleEnemy, Family: FamilyDamageOverTime, CastTime: 0, RecastTime: sec(2.5), Range: 25, MPCost: 400, Effects: EffectDamage | EffectDamageOverTime, StatusID: StatusDia, StatusDuration: 30 * time.Second},

		// AoE damage.
		{ID: Holy, Name: "Holy", MinLevel: 45, Category: CategoryGCD, Target: TargetSelf, Family: FamilyAoEDamage, CastTime: sec(2.5), RecastTime: sec(2.5), Radius: 8, MPCost: 400, Effects: EffectDamage},
		{ID: HolyIII, Name: "Holy III", MinLevel: 82, Category: CategoryGCD, Target: TargetSelf, Family: FamilyAoEDamage, CastTime: sec(2.5), RecastTime: sec(2.5), Radius: 8, MPCost: 400, Effects: EffectDamage},
		{ID: AfflatusMisery, Name: "Afflatus Misery", MinLevel: 74, Category: CategoryGCD, Target: TargetSingleEnemy, CastTime: 0, RecastTime: sec(2.5), Range: 25, Radius: 5, Effects: EffectDamage},

		// Single-target heals.
		{ID: Cure, Name: "Cure", MinLevel: 2, Category: CategoryGCD, Target: TargetSingleAlly, Family: FamilySingleHeal, CastTime: sec(1.5), RecastTime: sec(2.5), Range: 30, MPCost: 400, Effects: EffectHeal},
		{ID: CureII, Name: "Cure II", MinLevel: 30, Category: CategoryGCD, Target: TargetSingleAlly, Family: FamilySingleHeal, CastTime: sec(2.0), RecastTime: sec(2.5), Range: 30, MPCost: 1000, Effects: EffectHeal},
		{ID: AfflatusSolace, Name: "Afflatus Solace", MinLevel: 52, Category: CategoryGCD, Target: TargetSingleAlly, CastTime: 0, RecastTime: sec(2.5), Range: 30, LilyCost: 1, Effects: EffectHeal},
		{ID: Tetragrammaton, Name: "Tetragrammaton", MinLevel: 60, Category: CategoryOGCD, Target: TargetSingleAlly, RecastTime: 60 * time.Second, Range: 30, Effects: EffectHeal},
		{ID: Benediction, Name: "Benediction", MinLevel: 50, Category: CategoryOGCD, Target: TargetSingleAlly, RecastTime: 180 * time.Second, Range: 30, Effects: EffectHeal},

		// AoE heals.
		{ID: Medica, Name: "Medica", MinLevel: 10, Category: CategoryGCD, Target: TargetPartyArea, Family: FamilyAoEHeal, CastTime: sec(2.0), RecastTime: sec(2.5), Radius: 15, MPCost: 900, Effects: EffectHeal},
		{ID: CureIII, Name: "Cure III", MinLevel: 40, Category: CategoryGCD, Target: TargetSingleAlly, CastTime: sec(2.0), RecastTime: sec(2.5), Range: 30, Radius: 10, MPCost: 1500, Effects: EffectHeal},
		{ID: MedicaII, Name: "Medica II", MinLevel: 50, Category: CategoryGCD, Target: TargetPartyArea, Family: FamilyAoEHeal, CastTime: sec(2.0), RecastTime: sec(2.5), Radius: 20, MPCost: 1000, Effects: EffectHeal | EffectHealOverTime, StatusID: StatusMedicaII, StatusDuration: 15 * time.Second},
		{ID: AfflatusRapture, Name: "Afflatus Rapture", MinLevel: 76, Category: CategoryGCD, Target: TargetPartyArea, CastTime: 0, RecastTime: sec(2.5), Radius: 20, LilyCost: 1, Effects: EffectHeal},

		// Heal over time and ground placement.
		{ID: Regen, Name: "Regen", MinLevel: 35, Category: CategoryGCD, Target: TargetSingleAlly, Family: FamilyRegen, CastTime: 0, RecastTime: sec(2.5), Range: 30, MPCost: 400, Effects: EffectHealOverTime, StatusID: StatusRegen, StatusDuration: 18 * time.Second},
		{ID: Asylum, Name: "Asylum", MinLevel: 52, Category: CategoryOGCD, Target: TargetGroundArea, RecastTime: 90 * time.Second, Range: 30, Radius: 10, Effects: EffectHealOverTime, StatusID: StatusAsylum, StatusDuration: 24 * time.Second},

		// Raise.
		{ID: Raise, Name: "Raise", MinLevel: 12, Category: CategoryGCD, Target: TargetSingleAlly, Family: FamilyRaise, CastTime: 8 * time.Second, RecastTime: sec(2.5), Range: 30, MPCost: 2400, Effects: EffectRaise},

		// Mitigation and party cooldowns.
		{ID: DivineBenison, Name: "Divine Benison", MinLevel: 66, Category: CategoryOGCD, Target: TargetSingleAlly, RecastTime: 30 * time.Second, Range: 30, Effects: EffectShield, StatusID: StatusDivineBenison, StatusDuration: 15 * time.Second},
		{ID: Aquaveil, Name: "Aquaveil", MinLevel: 86, Category: CategoryOGCD, Target: TargetSingleAlly, RecastTime: 60 * time.Second, Range: 30, Effects: EffectShield, StatusID: StatusAquaveil, StatusDuration: 8 * time.Second},
		{ID: Temperance, Name: "Temperance", MinLevel: 80, Category: CategoryOGCD, Target: TargetPartyArea, RecastTime: 120 * time.Second, Radius: 30, Effects: EffectBuff, StatusID: StatusTemperance, StatusDuration: 20 * time.Second},
		{ID: PlenaryIndulgence, Name: "Plenary Indulgence", MinLevel: 70, Category: CategoryOGCD, Target: TargetPartyArea, RecastTime: 60 * time.Second, Radius: 20, Effects: EffectBuff | EffectHeal, StatusID: StatusConfession, StatusDuration: 10 * time.Second},

		// Utility and resources.
		{ID: Assize, Name: "Assize", MinLevel: 56, Category: CategoryOGCD, Target: TargetSelf, RecastTime: 40 * time.Second, Radius: 15, Effects: EffectDamage | EffectHeal | EffectManaRestore},
		{ID: ThinAir, Name: "Thin Air", MinLevel: 58, Category: CategoryOGCD, Target: TargetSelf, RecastTime: 60 * time.Second, Effects: EffectBuff, StatusID: StatusThinAir, StatusDuration: 12 * time.Second},
		{ID: PresenceOfMind, Name: "Presence of Mind", MinLevel: 30, Category: CategoryOGCD, Target: TargetSelf, RecastTime: 120 * time.Second, Effects: EffectBuff, StatusID: StatusPresenceOfMind, StatusDuration: 15 * time.Second},
		{ID: Esuna, Name: "Esuna", MinLevel: 10, Category: CategoryGCD, Target: TargetSingleAlly, CastTime: sec(1.0), RecastTime: sec(2.5), Range: 30, MPCost: 400, Effects: EffectCleanse},
		{ID: Swiftcast, Name: "Swiftcast", MinLevel: 18, Category: CategoryOGCD, Target: TargetSelf, RecastTime: 60 * time.Second, Effects: EffectBuff, StatusID: StatusSwiftcast, StatusDuration: 10 * time.Second},
		{ID: LucidDreaming, Name: "Lucid Dreaming", MinLevel: 14, Category: CategoryOGCD, Target: TargetSelf, RecastTime: 60 * time.Second, Effects: EffectManaRestore, StatusID: StatusLucidDreaming, StatusDuration: 21 * time.Second},
		{ID: Surecast, Name: "Surecast", MinLevel: 44, Category: CategoryOGCD, Target: TargetSelf, RecastTime: 120 * time.Second, Effects: EffectBuff, StatusID: StatusSurecast, StatusDuration: 6 * time.Second},
		{ID: Sprint, Name: "Sprint", MinLevel: 1, Category: CategoryOGCD, Target: TargetSelf, RecastTime: 60 * time.Second, Effects: EffectMovement, StatusID: StatusSprint, StatusDuration: 10 * time.Second},
	})
}
