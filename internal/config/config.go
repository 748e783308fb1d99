package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	cp "github.com/otiai10/copy"
	"gopkg.in/yaml.v3"
)

var (
	Lilybot *LilybotCfg
	// Characters holds every character profile found under the config
	// directory, keyed by profile name.
	Characters map[string]*CharacterCfg
)

// LilybotCfg is the application-wide configuration.
type LilybotCfg struct {
	Debug struct {
		Log bool `yaml:"log"`
	} `yaml:"debug"`
	LogSaveDirectory string `yaml:"logSaveDirectory"`
	Server           struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Simulation struct {
		// Realtime paces the simulation at wall-clock speed so the live
		// status view is watchable; off, encounters finish in milliseconds.
		Realtime bool `yaml:"realtime"`
	} `yaml:"simulation"`
	Discord struct {
		Enabled   bool     `yaml:"enabled"`
		Token     string   `yaml:"token"`
		ChannelID string   `yaml:"channelId"`
		BotAdmins []string `yaml:"botAdmins"`
	} `yaml:"discord"`
	Telegram struct {
		Enabled bool   `yaml:"enabled"`
		Token   string `yaml:"token"`
		ChatID  int64  `yaml:"chatId"`
	} `yaml:"telegram"`
}

// CharacterCfg is one character profile: job, encounter script and the full
// rotation tuning surface. Every ability has its own enable flag; every
// trigger has its own numeric threshold.
type CharacterCfg struct {
	Job       string      `yaml:"job"`
	Encounter string      `yaml:"encounter"`
	Rotation  RotationCfg `yaml:"rotation"`
}

type RotationCfg struct {
	// InjuredThreshold is the HP fraction at or under which a party member
	// counts as injured for metrics and AoE gating.
	InjuredThreshold float64      `yaml:"injuredThreshold"`
	Raise            RaiseCfg     `yaml:"raise"`
	Healing          HealingCfg   `yaml:"healing"`
	Defensive        DefensiveCfg `yaml:"defensive"`
	Buffs            BuffsCfg     `yaml:"buffs"`
	Damage           DamageCfg    `yaml:"damage"`
	// HoldRules maps ability names to boolean expressions; an ability whose
	// rule evaluates true is withheld that tick.
	HoldRules map[string]string `yaml:"holdRules"`
}

type RaiseCfg struct {
	Enabled       bool    `yaml:"enabled"`
	UseSwiftcast  bool    `yaml:"useSwiftcast"`
	AllowHardcast bool    `yaml:"allowHardcast"`
	MpThreshold   float64 `yaml:"mpThreshold"`
}

// FeatureCfg is the common enable-flag + HP-fraction-threshold pair.
type FeatureCfg struct {
	Enabled   bool    `yaml:"enabled"`
	Threshold float64 `yaml:"threshold"`
}

type HealingCfg struct {
	Enabled        bool       `yaml:"enabled"`
	Benediction    FeatureCfg `yaml:"benediction"`
	Esuna          EsunaCfg   `yaml:"esuna"`
	Regen          RegenCfg   `yaml:"regen"`
	Tetragrammaton FeatureCfg `yaml:"tetragrammaton"`
	Lily           FeatureCfg `yaml:"lily"`
	AoE            AoEHealCfg `yaml:"aoe"`
	Single         FeatureCfg `yaml:"single"`
}

type EsunaCfg struct {
	Enabled bool `yaml:"enabled"`
	// MinDuration is how long a debuff must still run to be worth a GCD.
	MinDuration time.Duration `yaml:"minDuration"`
}

type RegenCfg struct {
	Enabled   bool    `yaml:"enabled"`
	Threshold float64 `yaml:"threshold"`
	// RefreshBuffer: re-apply only when the running regen drops under this.
	RefreshBuffer time.Duration `yaml:"refreshBuffer"`
}

type AoEHealCfg struct {
	Enabled    bool    `yaml:"enabled"`
	Threshold  float64 `yaml:"threshold"`
	MinTargets int     `yaml:"minTargets"`
}

type DefensiveCfg struct {
	Enabled       bool       `yaml:"enabled"`
	DivineBenison FeatureCfg `yaml:"divineBenison"`
	Aquaveil      FeatureCfg `yaml:"aquaveil"`
	Asylum        AsylumCfg  `yaml:"asylum"`
	Temperance    FeatureCfg `yaml:"temperance"`
}

type AsylumCfg struct {
	Enabled    bool    `yaml:"enabled"`
	Threshold  float64 `yaml:"threshold"`
	MinInjured int     `yaml:"minInjured"`
}

type BuffsCfg struct {
	Enabled        bool       `yaml:"enabled"`
	PresenceOfMind FeatureCfg `yaml:"presenceOfMind"`
	Assize         FeatureCfg `yaml:"assize"`
	LucidDreaming  FeatureCfg `yaml:"lucidDreaming"`
	ThinAir        FeatureCfg `yaml:"thinAir"`
	Plenary        FeatureCfg `yaml:"plenary"`
	Surecast       FeatureCfg `yaml:"surecast"`
	Sprint         FeatureCfg `yaml:"sprint"`
}

type DamageCfg struct {
	Enabled        bool   `yaml:"enabled"`
	TargetStrategy string `yaml:"targetStrategy"`
	DoT            DoTCfg `yaml:"dot"`
	AoE struct {
		Enabled    bool `yaml:"enabled"`
		MinTargets int  `yaml:"minTargets"`
	} `yaml:"aoe"`
	Single struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"single"`
}

type DoTCfg struct {
	Enabled       bool          `yaml:"enabled"`
	RefreshBuffer time.Duration `yaml:"refreshBuffer"`
}

// Load reads the global configuration and every character profile from the
// given directory. A missing directory is seeded from the bundled template.
func Load(baseDir string) error {
	if _, err := os.Stat(filepath.Join(baseDir, "lilybot.yaml")); os.IsNotExist(err) {
		if err := cp.Copy(filepath.Join(baseDir, "template"), baseDir); err != nil {
			return fmt.Errorf("error seeding config from template: %w", err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(baseDir, "lilybot.yaml"))
	if err != nil {
		return fmt.Errorf("error reading lilybot.yaml: %w", err)
	}
	cfg := &LilybotCfg{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("error parsing lilybot.yaml: %w", err)
	}
	Lilybot = cfg

	Characters = map[string]*CharacterCfg{}
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return fmt.Errorf("error reading config directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == "template" {
			continue
		}
		profilePath := filepath.Join(baseDir, entry.Name(), "character.yaml")
		if _, err := os.Stat(profilePath); os.IsNotExist(err) {
			continue
		}
		charCfg, err := LoadCharacter(profilePath)
		if err != nil {
			return fmt.Errorf("error loading character %s: %w", entry.Name(), err)
		}
		Characters[entry.Name()] = charCfg
	}

	return nil
}

// LoadCharacter reads one character profile, layered over the defaults.
func LoadCharacter(path string) (*CharacterCfg, error) {
	cfg := DefaultCharacterCfg()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return cfg, nil
}

// DefaultCharacterCfg returns the stock tuning: every feature on, thresholds
// at the values the rotation was balanced around.
func DefaultCharacterCfg() *CharacterCfg {
	cfg := &CharacterCfg{
		Job: "WhiteMage",
		Rotation: RotationCfg{
			InjuredThreshold: 0.85,
			Raise: RaiseCfg{
				Enabled:       true,
				UseSwiftcast:  true,
				AllowHardcast: true,
				MpThreshold:   0.30,
			},
			Healing: HealingCfg{
				Enabled:        true,
				Benediction:    FeatureCfg{Enabled: true, Threshold: 0.30},
				Esuna:          EsunaCfg{Enabled: true, MinDuration: 5 * time.Second},
				Regen:          RegenCfg{Enabled: true, Threshold: 0.90, RefreshBuffer: 3 * time.Second},
				Tetragrammaton: FeatureCfg{Enabled: true, Threshold: 0.70},
				Lily:           FeatureCfg{Enabled: true, Threshold: 0.75},
				AoE:            AoEHealCfg{Enabled: true, Threshold: 0.85, MinTargets: 3},
				Single:         FeatureCfg{Enabled: true, Threshold: 0.85},
			},
			Defensive: DefensiveCfg{
				Enabled:       true,
				DivineBenison: FeatureCfg{Enabled: true, Threshold: 0.90},
				Aquaveil:      FeatureCfg{Enabled: true, Threshold: 0.60},
				Asylum:        AsylumCfg{Enabled: true, Threshold: 0.80, MinInjured: 3},
				Temperance:    FeatureCfg{Enabled: true, Threshold: 0.65},
			},
			Buffs: BuffsCfg{
				Enabled:        true,
				PresenceOfMind: FeatureCfg{Enabled: true},
				Assize:         FeatureCfg{Enabled: true, Threshold: 0.90},
				LucidDreaming:  FeatureCfg{Enabled: true, Threshold: 0.70},
				ThinAir:        FeatureCfg{Enabled: true},
				Plenary:        FeatureCfg{Enabled: true, Threshold: 0.70},
				Surecast:       FeatureCfg{Enabled: false},
				Sprint:         FeatureCfg{Enabled: false},
			},
			Damage: DamageCfg{
				Enabled:        true,
				TargetStrategy: "nearest",
				DoT:            DoTCfg{Enabled: true, RefreshBuffer: 3 * time.Second},
			},
		},
	}
	cfg.Rotation.Damage.AoE.Enabled = true
	cfg.Rotation.Damage.AoE.MinTargets = 3
	cfg.Rotation.Damage.Single.Enabled = true

	return cfg
}
