package game

import (
	"math"
	"time"

	"github.com/isleen/lilybot/internal/data"
)

type UnitID int

type Job string

const (
	JobConjurer  Job = "Conjurer"
	JobWhiteMage Job = "WhiteMage"
)

type Position struct {
	X float64
	Y float64
}

func DistanceFromPoint(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Status is one active (de)buff on a unit.
type Status struct {
	ID        data.StatusID
	Remaining time.Duration
	// Lethal marks debuffs that will kill the carrier if not cleansed.
	Lethal bool
	// Cleansable marks debuffs removable by a cleanse action.
	Cleansable bool
}

// Gauge is the job resource state. Lilies accumulate over time in combat and
// pay for the instant Afflatus heals; each spent lily feeds the blood lily,
// which at three stacks unlocks the gauge spender attack.
type Gauge struct {
	Lilies    int
	BloodLily int
}

const (
	MaxLilies    = 3
	MaxBloodLily = 3
)

// Player is the acting character's snapshot for one tick.
type Player struct {
	ID       UnitID
	Name     string
	Job      Job
	Level    int
	HP       int
	MaxHP    int
	MP       int
	MaxMP    int
	Gauge    Gauge
	Position Position
	Statuses []Status
}

func (p Player) HPPercent() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return float64(p.HP) / float64(p.MaxHP)
}

func (p Player) MPPercent() float64 {
	if p.MaxMP <= 0 {
		return 0
	}
	return float64(p.MP) / float64(p.MaxMP)
}

func (p Player) HasStatus(id data.StatusID) bool {
	for _, s := range p.Statuses {
		if s.ID == id {
			return true
		}
	}
	return false
}

// PartyMember is one ally in the snapshot, the player included.
type PartyMember struct {
	ID       UnitID
	Name     string
	HP       int
	MaxHP    int
	Dead     bool
	Raised   bool // already has a pending raise, do not raise twice
	Position Position
	Statuses []Status
}

func (m PartyMember) HPPercent() float64 {
	if m.MaxHP <= 0 {
		return 0
	}
	return float64(m.HP) / float64(m.MaxHP)
}

func (m PartyMember) StatusRemaining(id data.StatusID) time.Duration {
	for _, s := range m.Statuses {
		if s.ID == id {
			return s.Remaining
		}
	}
	return 0
}

func (m PartyMember) CleansableDebuff() (Status, bool) {
	for _, s := range m.Statuses {
		if s.Cleansable {
			return s, true
		}
	}
	return Status{}, false
}

// Enemy is one hostile unit in the snapshot.
type Enemy struct {
	ID       UnitID
	Name     string
	HP       int
	MaxHP    int
	Position Position
	Statuses []Status
}

func (e Enemy) Alive() bool {
	return e.HP > 0
}

func (e Enemy) StatusRemaining(id data.StatusID) time.Duration {
	for _, s := range e.Statuses {
		if s.ID == id {
			return s.Remaining
		}
	}
	return 0
}

// PartyHealthMetrics aggregates one party scan so every defensive check can
// share it instead of rescanning.
type PartyHealthMetrics struct {
	Average float64
	Minimum float64
	Injured int
}

// Data is the full per-tick game-state snapshot. It is built by the host,
// read by the rotation modules and discarded after the tick.
type Data struct {
	PlayerUnit Player
	Party      []PartyMember
	Enemies    []Enemy
}

// HealthMetrics computes the aggregate party health view. Dead members are
// excluded; they are the resurrection module's business, not healing's.
func (d *Data) HealthMetrics(injuredThreshold float64) PartyHealthMetrics {
	m := PartyHealthMetrics{Minimum: 1.0}
	alive := 0
	for _, member := range d.Party {
		if member.Dead {
			continue
		}
		pct := member.HPPercent()
		m.Average += pct
		alive++
		if pct < m.Minimum {
			m.Minimum = pct
		}
		if pct <= injuredThreshold {
			m.Injured++
		}
	}
	if alive > 0 {
		m.Average /= float64(alive)
	} else {
		m.Average = 0
		m.Minimum = 0
	}

	return m
}

// EnemiesWithin counts living enemies inside the given radius around a point.
func (d *Data) EnemiesWithin(center Position, radius float64) int {
	count := 0
	for _, e := range d.Enemies {
		if !e.Alive() {
			continue
		}
		if DistanceFromPoint(center, e.Position) <= radius {
			count++
		}
	}
	return count
}
