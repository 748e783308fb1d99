package game

import (
	"time"

	"github.com/isleen/lilybot/internal/data"
)

// TargetStrategy selects how the damage fallback picks its enemy.
type TargetStrategy string

const (
	TargetNearest  TargetStrategy = "nearest"
	TargetLowestHP TargetStrategy = "lowesthp"
)

// LowestHPMember returns the living party member with the lowest HP
// fraction.
func (d *Data) LowestHPMember() (PartyMember, bool) {
	best := -1
	for i, m := range d.Party {
		if m.Dead {
			continue
		}
		if best == -1 || m.HPPercent() < d.Party[best].HPPercent() {
			best = i
		}
	}
	if best == -1 {
		return PartyMember{}, false
	}

	return d.Party[best], true
}

// DeadMemberNeedingRaise returns a dead party member without a pending
// raise.
func (d *Data) DeadMemberNeedingRaise() (PartyMember, bool) {
	for _, m := range d.Party {
		if m.Dead && !m.Raised {
			return m, true
		}
	}

	return PartyMember{}, false
}

// CleanseTarget returns a member carrying a cleansable debuff worth a GCD:
// lethal debuffs always qualify, others only while their remaining duration
// is at least minDuration.
func (d *Data) CleanseTarget(minDuration time.Duration) (PartyMember, Status, bool) {
	for _, m := range d.Party {
		if m.Dead {
			continue
		}
		debuff, found := m.CleansableDebuff()
		if !found {
			continue
		}
		if debuff.Lethal || debuff.Remaining >= minDuration {
			return m, debuff, true
		}
	}

	return PartyMember{}, Status{}, false
}

// RegenTarget returns a member low enough to want the HoT whose current
// application has dropped under the refresh buffer. Critically low members
// are skipped; they need direct heals, not a slow tick.
func (d *Data) RegenTarget(threshold, criticalThreshold float64, statusID data.StatusID, buffer time.Duration) (PartyMember, bool) {
	for _, m := range d.Party {
		if m.Dead {
			continue
		}
		pct := m.HPPercent()
		if pct > threshold || pct <= criticalThreshold {
			continue
		}
		if m.StatusRemaining(statusID) > buffer {
			continue
		}
		return m, true
	}

	return PartyMember{}, false
}

// DotRefreshTarget returns an enemy whose DoT is missing or about to fall
// off.
func (d *Data) DotRefreshTarget(statusID data.StatusID, buffer time.Duration) (Enemy, bool) {
	for _, e := range d.Enemies {
		if !e.Alive() {
			continue
		}
		if e.StatusRemaining(statusID) <= buffer {
			return e, true
		}
	}

	return Enemy{}, false
}

// BestEnemy picks the damage target according to the configured strategy.
func (d *Data) BestEnemy(strategy TargetStrategy) (Enemy, bool) {
	best := -1
	for i, e := range d.Enemies {
		if !e.Alive() {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		switch strategy {
		case TargetLowestHP:
			if e.HP < d.Enemies[best].HP {
				best = i
			}
		default: // nearest
			if DistanceFromPoint(d.PlayerUnit.Position, e.Position) < DistanceFromPoint(d.PlayerUnit.Position, d.Enemies[best].Position) {
				best = i
			}
		}
	}
	if best == -1 {
		return Enemy{}, false
	}

	return d.Enemies[best], true
}
