package sim

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/isleen/lilybot/internal/config"
	"github.com/isleen/lilybot/internal/data"
	"github.com/isleen/lilybot/internal/event"
	"github.com/isleen/lilybot/internal/game"
	"github.com/isleen/lilybot/internal/rotation"
)

const (
	// Step is the fixed simulation tick.
	Step = 100 * time.Millisecond
	// gcdLength is the shared recast of every GCD action.
	gcdLength = 2500 * time.Millisecond
	// ogcdLock is the animation lock one weave costs.
	ogcdLock = 700 * time.Millisecond
	// serverTick drives MP regen, DoT/HoT ticks and enemy auto attacks.
	serverTick = 3 * time.Second
	// lilyInterval grows the healing gauge while in combat.
	lilyInterval = 20 * time.Second

	mpPerTick      = 200
	lucidMpPerTick = 550
	raiseHPFactor  = 0.25
)

// Report is what a finished session hands back.
type Report struct {
	Encounter    string         `json:"encounter"`
	Duration     time.Duration  `json:"duration"`
	TotalHealing int            `json:"totalHealing"`
	TotalDamage  int            `json:"totalDamage"`
	Deaths       int            `json:"deaths"`
	Raises       int            `json:"raises"`
	Interrupts   int            `json:"interrupts"`
	Casts        map[string]int `json:"casts"`
}

type pendingCast struct {
	ability data.AbilityRecord
	target  game.UnitID
}

// Session runs one character through one encounter script, driving the
// rotation engine tick by tick the way the game client drives the plugin.
type Session struct {
	ID string
	// Realtime paces Run at wall-clock speed instead of as fast as possible.
	Realtime bool

	logger  *slog.Logger
	cfg     *config.CharacterCfg
	catalog *data.Catalog
	orch    *rotation.Orchestrator
	rules   *rotation.HoldRules
	events  *event.Listener
	enc     *Encounter

	mu    sync.Mutex
	clock time.Duration
	world *game.Data
	debug rotation.Debug

	cooldowns     *Cooldowns
	nextGcdAt     time.Duration
	animLockUntil time.Duration
	pending       *pendingCast
	castUntil     time.Duration
	movingUntil   time.Duration
	nextLilyAt    time.Duration
	nextServerAt  time.Duration
	nextEvent     int

	report Report
}

// NewSession wires a session for the given character profile.
func NewSession(logger *slog.Logger, cfg *config.CharacterCfg, enc *Encounter, events *event.Listener) (*Session, error) {
	catalog := data.WhiteMageCatalog()
	modules, err := rotation.BuildModules(game.Job(cfg.Job), logger)
	if err != nil {
		return nil, err
	}
	orch, err := rotation.NewOrchestrator(logger, modules)
	if err != nil {
		return nil, err
	}
	rules, err := rotation.CompileHoldRules(cfg.Rotation.HoldRules)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:           uuid.NewString(),
		logger:       logger,
		cfg:          cfg,
		catalog:      catalog,
		orch:         orch,
		rules:        rules,
		events:       events,
		enc:          enc,
		nextLilyAt:   lilyInterval,
		nextServerAt: serverTick,
		report:       Report{Encounter: enc.Name, Casts: map[string]int{}},
	}
	s.cooldowns = NewCooldowns(func() time.Duration { return s.clock })
	s.world = buildWorld(enc)

	return s, nil
}

func buildWorld(enc *Encounter) *game.Data {
	world := &game.Data{
		PlayerUnit: game.Player{
			ID:    1,
			Name:  enc.Player.Name,
			Job:   game.JobWhiteMage,
			Level: enc.Player.Level,
			HP:    enc.Player.MaxHP,
			MaxHP: enc.Player.MaxHP,
			MP:    enc.Player.MaxMP,
			MaxMP: enc.Player.MaxMP,
		},
	}
	world.Party = append(world.Party, game.PartyMember{
		ID:    1,
		Name:  enc.Player.Name,
		HP:    enc.Player.MaxHP,
		MaxHP: enc.Player.MaxHP,
	})

	id := game.UnitID(2)
	for _, m := range enc.Party {
		world.Party = append(world.Party, game.PartyMember{ID: id, Name: m.Name, HP: m.MaxHP, MaxHP: m.MaxHP})
		id++
	}
	for _, e := range enc.Enemies {
		world.Enemies = append(world.Enemies, game.Enemy{ID: id, Name: e.Name, HP: e.MaxHP, MaxHP: e.MaxHP, Position: game.Position{X: e.X, Y: e.Y}})
		id++
	}

	return world
}

// Run drives the encounter to its end or until the context is cancelled.
func (s *Session) Run(ctx context.Context) (Report, error) {
	s.events.Emit(event.New(event.EncounterStarted, s.ID, fmt.Sprintf("Encounter %s started", s.enc.Name)))

	for s.clock < s.enc.Duration {
		select {
		case <-ctx.Done():
			return s.finish(), ctx.Err()
		default:
		}

		s.mu.Lock()
		s.step()
		s.mu.Unlock()

		if s.Realtime {
			time.Sleep(Step)
		}
	}

	report := s.finish()
	s.events.Emit(event.New(event.EncounterFinished, s.ID,
		fmt.Sprintf("Encounter %s finished: %d healing, %d damage, %d deaths", s.enc.Name, report.TotalHealing, report.TotalDamage, report.Deaths)))

	return report, nil
}

// step advances one tick: world upkeep first, then the two decision passes.
func (s *Session) step() {
	s.clock += Step
	s.applyScriptedEvents()
	s.tickStatuses()
	s.tickServer()
	s.tickGauge()
	s.resolvePendingCast()

	moving := s.clock < s.movingUntil
	inCombat := s.inCombat()

	// GCD pass.
	if s.canExecuteGcd() {
		s.orch.RunPass(s.buildContext(inCombat, moving, true, false))
	}
	// Independent oGCD pass: weave only when it will not clip the next GCD.
	if s.canExecuteOgcd() {
		s.orch.RunPass(s.buildContext(inCombat, moving, false, true))
	}
}

func (s *Session) buildContext(inCombat, moving, gcd, ogcd bool) *rotation.Context {
	return &rotation.Context{
		Data:           s.world,
		Cfg:            s.cfg,
		InCombat:       inCombat,
		IsMoving:       moving,
		CanExecuteGcd:  gcd,
		CanExecuteOgcd: ogcd,
		Cooldowns:      s.cooldowns,
		Executor:       s,
		Rules:          s.rules,
		Catalog:        s.catalog,
		Debug:          &s.debug,
	}
}

func (s *Session) inCombat() bool {
	for _, e := range s.world.Enemies {
		if e.Alive() {
			return true
		}
	}
	return false
}

func (s *Session) canExecuteGcd() bool {
	return s.pending == nil && s.clock >= s.nextGcdAt
}

func (s *Session) canExecuteOgcd() bool {
	if s.pending != nil || s.clock < s.animLockUntil {
		return false
	}
	// A weave must fit before the next GCD comes up.
	return s.clock >= s.nextGcdAt || s.nextGcdAt-s.clock >= ogcdLock
}

// applyScriptedEvents replays every timeline entry that has come due.
func (s *Session) applyScriptedEvents() {
	for s.nextEvent < len(s.enc.Events) && s.enc.Events[s.nextEvent].At <= s.clock {
		ev := s.enc.Events[s.nextEvent]
		s.nextEvent++

		switch ev.Kind {
		case "raidwide":
			for i := range s.world.Party {
				s.damageMember(&s.world.Party[i], ev.Amount)
			}
		case "tankbuster":
			if m := s.memberByName(ev.Target); m != nil {
				s.damageMember(m, ev.Amount)
			}
		case "debuff":
			if m := s.memberByName(ev.Target); m != nil && !m.Dead {
				m.Statuses = append(m.Statuses, game.Status{
					ID:         data.StatusID(1000 + s.nextEvent),
					Remaining:  ev.Duration,
					Lethal:     ev.Lethal,
					Cleansable: true,
				})
			}
		case "kill":
			if m := s.memberByName(ev.Target); m != nil {
				s.damageMember(m, m.HP)
			}
		case "move":
			s.movingUntil = s.clock + ev.Duration
			s.interruptCast()
		}
	}
}

func (s *Session) memberByName(name string) *game.PartyMember {
	for i := range s.world.Party {
		if s.world.Party[i].Name == name {
			return &s.world.Party[i]
		}
	}
	return nil
}

func (s *Session) damageMember(m *game.PartyMember, amount int) {
	if m.Dead {
		return
	}
	// Shields soak the hit before HP does.
	if m.StatusRemaining(data.StatusDivineBenison) > 0 {
		amount = amount / 2
		s.removeStatus(m, data.StatusDivineBenison)
	}

	m.HP -= amount
	if m.HP <= 0 {
		m.HP = 0
		m.Dead = true
		m.Statuses = nil
		s.report.Deaths++
		s.events.Emit(event.New(event.MemberDown, s.ID, m.Name+" is down"))
	}
	s.syncPlayerHP()
}

func (s *Session) removeStatus(m *game.PartyMember, id data.StatusID) {
	kept := m.Statuses[:0]
	for _, st := range m.Statuses {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	m.Statuses = kept
}

// syncPlayerHP mirrors the player's party slot onto the player unit. Slot 0
// is always the player.
func (s *Session) syncPlayerHP() {
	me := &s.world.Party[0]
	s.world.PlayerUnit.HP = me.HP
	if me.Dead {
		s.world.PlayerUnit.HP = 0
	}
}

// tickStatuses runs status clocks down and expires them.
func (s *Session) tickStatuses() {
	tick := func(statuses []game.Status) []game.Status {
		kept := statuses[:0]
		for _, st := range statuses {
			st.Remaining -= Step
			if st.Remaining > 0 {
				kept = append(kept, st)
			}
		}
		return kept
	}

	s.world.PlayerUnit.Statuses = tick(s.world.PlayerUnit.Statuses)
	for i := range s.world.Party {
		s.world.Party[i].Statuses = tick(s.world.Party[i].Statuses)
	}
	for i := range s.world.Enemies {
		s.world.Enemies[i].Statuses = tick(s.world.Enemies[i].Statuses)
	}
}

// tickServer is the 3s housekeeping tick: MP regen, HoT/DoT ticks, enemy
// auto attacks on the first party slot past the player.
func (s *Session) tickServer() {
	if s.clock < s.nextServerAt {
		return
	}
	s.nextServerAt += serverTick

	player := &s.world.PlayerUnit
	regen := mpPerTick
	if player.HasStatus(data.StatusLucidDreaming) {
		regen += lucidMpPerTick
	}
	player.MP += regen
	if player.MP > player.MaxMP {
		player.MP = player.MaxMP
	}

	for i := range s.world.Party {
		m := &s.world.Party[i]
		if m.Dead {
			continue
		}
		if m.StatusRemaining(data.StatusRegen) > 0 {
			s.healMember(m, m.MaxHP/20)
		}
		if m.StatusRemaining(data.StatusMedicaII) > 0 || m.StatusRemaining(data.StatusAsylum) > 0 {
			s.healMember(m, m.MaxHP/25)
		}
	}

	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if !e.Alive() {
			continue
		}
		for _, st := range e.Statuses {
			if st.ID == data.StatusAero || st.ID == data.StatusAeroII || st.ID == data.StatusDia {
				s.damageEnemy(e, 150)
			}
		}
		if enemySetup := s.enemySetup(e.Name); enemySetup != nil && enemySetup.AutoAttack > 0 && len(s.world.Party) > 1 {
			s.damageMember(&s.world.Party[1], enemySetup.AutoAttack)
		}
	}
}

func (s *Session) enemySetup(name string) *EnemySetup {
	for i := range s.enc.Enemies {
		if s.enc.Enemies[i].Name == name {
			return &s.enc.Enemies[i]
		}
	}
	return nil
}

func (s *Session) healMember(m *game.PartyMember, amount int) {
	if m.Dead {
		return
	}
	healed := amount
	if m.HP+healed > m.MaxHP {
		healed = m.MaxHP - m.HP
	}
	m.HP += healed
	s.report.TotalHealing += healed
	s.syncPlayerHP()
}

func (s *Session) damageEnemy(e *game.Enemy, amount int) {
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
	s.report.TotalDamage += amount
}

// tickGauge grows a lily every interval while fighting.
func (s *Session) tickGauge() {
	if !s.inCombat() || s.clock < s.nextLilyAt {
		return
	}
	s.nextLilyAt += lilyInterval
	if s.world.PlayerUnit.Gauge.Lilies < game.MaxLilies {
		s.world.PlayerUnit.Gauge.Lilies++
	}
}

// resolvePendingCast lands a finished hardcast.
func (s *Session) resolvePendingCast() {
	if s.pending == nil || s.clock < s.castUntil {
		return
	}
	cast := *s.pending
	s.pending = nil
	s.applyAbility(cast.ability, cast.target)
}

func (s *Session) interruptCast() {
	if s.pending == nil {
		return
	}
	s.pending = nil
	s.report.Interrupts++
	s.logger.Debug("Cast interrupted by movement", slog.String("ability", s.debug.LastAction))
}

func (s *Session) finish() Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.Duration = s.clock

	return s.report
}

// Status is the live view the server streams.
type SessionStatus struct {
	ID        string         `json:"id"`
	Encounter string         `json:"encounter"`
	Clock     string         `json:"clock"`
	PartyHP   []string       `json:"partyHp"`
	MP        int            `json:"mp"`
	Lilies    int            `json:"lilies"`
	Debug     rotation.Debug `json:"debug"`
	Report    Report         `json:"report"`
}

func (s *Session) Status() SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := SessionStatus{
		ID:        s.ID,
		Encounter: s.enc.Name,
		Clock:     s.clock.String(),
		MP:        s.world.PlayerUnit.MP,
		Lilies:    s.world.PlayerUnit.Gauge.Lilies,
		Debug:     s.debug,
		Report:    s.report,
	}
	for _, m := range s.world.Party {
		status.PartyHP = append(status.PartyHP, fmt.Sprintf("%s %d/%d", m.Name, m.HP, m.MaxHP))
	}

	return status
}
