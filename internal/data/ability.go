package data

import (
	"sort"
	"time"
)

type AbilityID int

type StatusID int

// Category separates the two independent timing tracks the game runs.
type Category int

const (
	CategoryGCD Category = iota
	CategoryOGCD
)

// Target describes what an ability must be aimed at.
type Target int

const (
	TargetSelf Target = iota
	TargetSingleEnemy
	TargetSingleAlly
	TargetPartyArea
	TargetGroundArea
)

// Effect is a bitset of declared ability effects. An ability may carry
// several tags (e.g. Assize is Damage|Heal|ManaRestore).
type Effect uint16

const (
	EffectDamage Effect = 1 << iota
	EffectHeal
	EffectShield
	EffectBuff
	EffectDebuff
	EffectDamageOverTime
	EffectHealOverTime
	EffectMovement
	EffectCleanse
	EffectRaise
	EffectManaRestore

	EffectNone Effect = 0
)

func (e Effect) Has(flag Effect) bool {
	return e&flag != 0
}

// Family groups upgrade lines so callers can ask for the strongest unlocked
// member instead of hardcoding per-level ability IDs.
type Family int

const (
	FamilyNone Family = iota
	FamilySingleDamage
	FamilyDamageOverTime
	FamilyAoEDamage
	FamilySingleHeal
	FamilyAoEHeal
	FamilyRegen
	FamilyRaise
)

// AbilityRecord is one immutable catalog entry. The catalog is built once at
// startup and never mutates afterwards.
type AbilityRecord struct {
	ID             AbilityID
	Name           string
	MinLevel       int
	Category       Category
	Target         Target
	Family         Family
	CastTime       time.Duration
	RecastTime     time.Duration
	Range          float64
	Radius         float64
	MPCost         int
	LilyCost       int
	Effects        Effect
	StatusID       StatusID
	StatusDuration time.Duration
}

// IsInstant reports whether the ability has no hardcast and therefore stays
// usable while moving.
func (a AbilityRecord) IsInstant() bool {
	return a.CastTime == 0
}

// Catalog is an immutable keyed lookup over ability records.
type Catalog struct {
	byID     map[AbilityID]AbilityRecord
	families map[Family][]AbilityRecord
}

// NewCatalog builds the lookup structures. Family members are kept sorted by
// MinLevel so BestAtLevel can scan from the strongest end.
func NewCatalog(records []AbilityRecord) *Catalog {
	c := &Catalog{
		byID:     make(map[AbilityID]AbilityRecord, len(records)),
		families: make(map[Family][]AbilityRecord),
	}
	for _, r := range records {
		c.byID[r.ID] = r
		if r.Family != FamilyNone {
			c.families[r.Family] = append(c.families[r.Family], r)
		}
	}
	for f := range c.families {
		sort.Slice(c.families[f], func(i, j int) bool {
			return c.families[f][i].MinLevel < c.families[f][j].MinLevel
		})
	}

	return c
}

// ByID returns the record for the given ability ID.
func (c *Catalog) ByID(id AbilityID) (AbilityRecord, bool) {
	r, found := c.byID[id]
	return r, found
}

// BestAtLevel returns the highest-level member of a family the player has
// unlocked at the given level.
func (c *Catalog) BestAtLevel(f Family, level int) (AbilityRecord, bool) {
	members := c.families[f]
	for i := len(members) - 1; i >= 0; i-- {
		if members[i].MinLevel <= level {
			return members[i], true
		}
	}

	return AbilityRecord{}, false
}
