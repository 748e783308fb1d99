package sim

import (
	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/event"
	"github.com/isleen/lilybot/internal/game"
)

// Heal and damage strengths as fractions of the target's max HP (heals) or
// flat potency-scaled hits (damage). The simulator does not chase combat
// formula fidelity; relative sizes are what matter to the decision engine.
var healFractions = map[data.AbilityID]float64{
	data.Benediction:     1.00,
	data.Cure:            0.18,
	data.CureII:          0.30,
	data.CureIII:         0.25,
	data.AfflatusSolace:  0.30,
	data.AfflatusRapture: 0.15,
	data.Tetragrammaton:  0.25,
	data.Medica:          0.12,
	data.MedicaII:        0.10,
	data.Assize:          0.12,
}

var damageAmounts = map[data.AbilityID]int{
	data.Stone:          450,
	data.StoneII:        500,
	data.StoneIII:       600,
	data.StoneIV:        700,
	data.Glare:          800,
	data.GlareIII:       850,
	data.Aero:           120,
	data.AeroII:         140,
	data.Dia:            160,
	data.Holy:           400,
	data.HolyIII:        450,
	data.AfflatusMisery: 3400,
	data.Assize:         1100,
}

// ExecuteGcd starts a GCD action. Hardcasts land when the cast bar fills;
// instants land immediately. Swiftcast and Thin Air are consumed here, the
// way the client consumes them on snapshot.
func (s *Session) ExecuteGcd(ability data.AbilityRecord, target game.UnitID) bool {
	if !s.canExecuteGcd() {
		return false
	}

	player := &s.world.PlayerUnit
	castTime := ability.CastTime
	usedSwiftcast := false
	if castTime > 0 && player.HasStatus(data.StatusSwiftcast) {
		castTime = 0
		usedSwiftcast = true
	}

	if ability.LilyCost > 0 {
		if player.Gauge.Lilies < ability.LilyCost {
			return false
		}
		player.Gauge.Lilies -= ability.LilyCost
		if player.Gauge.BloodLily < game.MaxBloodLily {
			player.Gauge.BloodLily++
		}
	}

	if ability.MPCost > 0 {
		if player.HasStatus(data.StatusThinAir) {
			s.removePlayerStatus(data.StatusThinAir)
		} else {
			if player.MP < ability.MPCost {
				return false
			}
			player.MP -= ability.MPCost
		}
	}
	if usedSwiftcast {
		s.removePlayerStatus(data.StatusSwiftcast)
	}

	s.nextGcdAt = s.clock + gcdLength
	s.recordCast(ability)

	if castTime == 0 {
		s.animLockUntil = s.clock + ogcdLock
		s.applyAbility(ability, target)
		return true
	}

	s.castUntil = s.clock + castTime
	s.pending = &pendingCast{ability: ability, target: target}
	return true
}

// ExecuteOgcd weaves an off-global action; these are always instant.
func (s *Session) ExecuteOgcd(ability data.AbilityRecord, target game.UnitID) bool {
	if !s.canExecuteOgcd() || !s.cooldowns.IsReady(ability.ID) {
		return false
	}

	s.cooldowns.Trigger(ability)
	s.animLockUntil = s.clock + ogcdLock
	s.recordCast(ability)
	s.applyAbility(ability, target)
	return true
}

// ExecuteGroundOgcd places a ground-targeted action at the given position.
func (s *Session) ExecuteGroundOgcd(ability data.AbilityRecord, _ game.Position) bool {
	if !s.canExecuteOgcd() || !s.cooldowns.IsReady(ability.ID) {
		return false
	}

	s.cooldowns.Trigger(ability)
	s.animLockUntil = s.clock + ogcdLock
	s.recordCast(ability)
	// The ground effect covers the party where it stands.
	for i := range s.world.Party {
		s.applyStatusToMember(&s.world.Party[i], ability)
	}
	return true
}

func (s *Session) recordCast(ability data.AbilityRecord) {
	s.report.Casts[ability.Name]++
	s.events.Emit(event.New(event.ActionUsed, s.ID, ability.Name))
}

// applyAbility lands an ability's effects on the world.
func (s *Session) applyAbility(ability data.AbilityRecord, target game.UnitID) {
	switch {
	case ability.Effects.Has(data.EffectRaise):
		s.applyRaise(target)
	case ability.Effects.Has(data.EffectCleanse):
		if m := s.memberByID(target); m != nil {
			s.cleanseMember(m)
		}
	case ability.Target == data.TargetPartyArea:
		for i := range s.world.Party {
			m := &s.world.Party[i]
			if ability.Effects.Has(data.EffectHeal) {
				s.healMember(m, int(float64(m.MaxHP)*healFraction(ability)))
			}
			s.applyStatusToMember(m, ability)
		}
	case ability.Effects.Has(data.EffectDamage) && ability.Radius > 0 && ability.Target == data.TargetSelf:
		for i := range s.world.Enemies {
			e := &s.world.Enemies[i]
			if e.Alive() && game.DistanceFromPoint(s.world.PlayerUnit.Position, e.Position) <= ability.Radius {
				s.damageEnemy(e, damageAmounts[ability.ID])
			}
		}
		s.selfAoEHeal(ability)
	case ability.Effects.Has(data.EffectDamage):
		if e := s.enemyByID(target); e != nil {
			s.damageEnemy(e, damageAmounts[ability.ID])
			s.applyStatusToEnemy(e, ability)
		}
	case ability.Effects.Has(data.EffectHeal) || ability.Effects.Has(data.EffectHealOverTime) || ability.Effects.Has(data.EffectShield):
		if m := s.memberByID(target); m != nil {
			if ability.Effects.Has(data.EffectHeal) {
				s.healMember(m, int(float64(m.MaxHP)*healFraction(ability)))
			}
			s.applyStatusToMember(m, ability)
		}
	default:
		// Pure self buffs (Swiftcast, Lucid, Presence of Mind, Thin Air...).
		s.applyStatusToPlayer(ability)
	}

	if ability.Effects.Has(data.EffectManaRestore) && ability.ID == data.Assize {
		player := &s.world.PlayerUnit
		player.MP += 500
		if player.MP > player.MaxMP {
			player.MP = player.MaxMP
		}
	}
}

// selfAoEHeal covers Assize, which heals around the caster while damaging.
func (s *Session) selfAoEHeal(ability data.AbilityRecord) {
	if !ability.Effects.Has(data.EffectHeal) {
		return
	}
	for i := range s.world.Party {
		m := &s.world.Party[i]
		s.healMember(m, int(float64(m.MaxHP)*healFraction(ability)))
	}
}

func (s *Session) applyRaise(target game.UnitID) {
	m := s.memberByID(target)
	if m == nil || !m.Dead {
		return
	}
	m.Dead = false
	m.Raised = false
	m.HP = int(float64(m.MaxHP) * raiseHPFactor)
	s.report.Raises++
	s.syncPlayerHP()
	s.events.Emit(event.New(event.MemberRaised, s.ID, m.Name+" is back up"))
}

func (s *Session) cleanseMember(m *game.PartyMember) {
	kept := m.Statuses[:0]
	for _, st := range m.Statuses {
		if !st.Cleansable {
			kept = append(kept, st)
		}
	}
	m.Statuses = kept
}

func (s *Session) applyStatusToMember(m *game.PartyMember, ability data.AbilityRecord) {
	if ability.StatusID == 0 || m.Dead {
		return
	}
	s.removeStatus(m, ability.StatusID)
	m.Statuses = append(m.Statuses, game.Status{ID: ability.StatusID, Remaining: ability.StatusDuration})
}

func (s *Session) applyStatusToEnemy(e *game.Enemy, ability data.AbilityRecord) {
	if ability.StatusID == 0 {
		return
	}
	kept := e.Statuses[:0]
	for _, st := range e.Statuses {
		if st.ID != ability.StatusID {
			kept = append(kept, st)
		}
	}
	e.Statuses = append(kept, game.Status{ID: ability.StatusID, Remaining: ability.StatusDuration})
}

func (s *Session) applyStatusToPlayer(ability data.AbilityRecord) {
	if ability.StatusID == 0 {
		return
	}
	player := &s.world.PlayerUnit
	kept := player.Statuses[:0]
	for _, st := range player.Statuses {
		if st.ID != ability.StatusID {
			kept = append(kept, st)
		}
	}
	player.Statuses = append(kept, game.Status{ID: ability.StatusID, Remaining: ability.StatusDuration})
}

func (s *Session) memberByID(id game.UnitID) *game.PartyMember {
	for i := range s.world.Party {
		if s.world.Party[i].ID == id {
			return &s.world.Party[i]
		}
	}
	return nil
}

func (s *Session) enemyByID(id game.UnitID) *game.Enemy {
	for i := range s.world.Enemies {
		if s.world.Enemies[i].ID == id {
			return &s.world.Enemies[i]
		}
	}
	return nil
}

func (s *Session) removePlayerStatus(id data.StatusID) {
	player := &s.world.PlayerUnit
	kept := player.Statuses[:0]
	for _, st := range player.Statuses {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	player.Statuses = kept
}

func healFraction(ability data.AbilityRecord) float64 {
	if f, found := healFractions[ability.ID]; found {
		return f
	}
	return 0.15
}
