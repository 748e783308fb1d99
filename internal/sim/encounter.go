package sim

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Encounter is a scripted fight: party composition, enemies, and a timeline
// of incoming events the rotation has to react to. Timestamps are absolute
// from pull; there are no labels or jumps.
type Encounter struct {
	Name     string          `yaml:"name"`
	Duration time.Duration   `yaml:"duration"`
	Player   PlayerSetup     `yaml:"player"`
	Party    []MemberSetup   `yaml:"party"`
	Enemies  []EnemySetup    `yaml:"enemies"`
	Events   []ScriptedEvent `yaml:"events"`
}

type PlayerSetup struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	MaxHP int    `yaml:"maxhp"`
	MaxMP int    `yaml:"maxmp"`
}

type MemberSetup struct {
	Name  string `yaml:"name"`
	MaxHP int    `yaml:"maxhp"`
}

type EnemySetup struct {
	Name  string  `yaml:"name"`
	MaxHP int     `yaml:"maxhp"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	// AutoAttack is damage dealt to the front party slot every server tick.
	AutoAttack int `yaml:"autoAttack"`
}

// ScriptedEvent kinds: raidwide (damage to everyone), tankbuster (damage to
// one member), debuff (cleansable status on a member), kill (instant death),
// move (forces player movement for Duration).
type ScriptedEvent struct {
	At       time.Duration `yaml:"at"`
	Kind     string        `yaml:"kind"`
	Target   string        `yaml:"target"`
	Amount   int           `yaml:"amount"`
	Duration time.Duration `yaml:"duration"`
	Lethal   bool          `yaml:"lethal"`
}

// LoadEncounter reads and validates one encounter script.
func LoadEncounter(path string) (*Encounter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading encounter %s: %w", path, err)
	}

	enc := &Encounter{}
	if err := yaml.Unmarshal(raw, enc); err != nil {
		return nil, fmt.Errorf("error parsing encounter %s: %w", path, err)
	}
	if err := enc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid encounter %s: %w", path, err)
	}

	sort.SliceStable(enc.Events, func(i, j int) bool {
		return enc.Events[i].At < enc.Events[j].At
	})

	return enc, nil
}

func (e *Encounter) Validate() error {
	if e.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if e.Player.MaxHP <= 0 || e.Player.MaxMP <= 0 {
		return fmt.Errorf("player needs maxhp and maxmp")
	}
	if e.Player.Level <= 0 {
		return fmt.Errorf("player needs a level")
	}

	names := map[string]bool{e.Player.Name: true}
	for _, m := range e.Party {
		if m.MaxHP <= 0 {
			return fmt.Errorf("member %s needs maxhp", m.Name)
		}
		names[m.Name] = true
	}
	for _, en := range e.Enemies {
		if en.MaxHP <= 0 {
			return fmt.Errorf("enemy %s needs maxhp", en.Name)
		}
		names[en.Name] = true
	}

	for i, ev := range e.Events {
		switch ev.Kind {
		case "raidwide", "move":
		case "tankbuster", "debuff", "kill":
			if !names[ev.Target] {
				return fmt.Errorf("event %d targets unknown unit %q", i, ev.Target)
			}
		default:
			return fmt.Errorf("event %d has unknown kind %q", i, ev.Kind)
		}
		if ev.At < 0 || ev.At > e.Duration {
			return fmt.Errorf("event %d is outside the encounter window", i)
		}
	}

	return nil
}
