package bossfx

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed stats.yaml
var defaultStats []byte

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Balance holds the gameplay numbers. Cooldowns, rates and durations are milliseconds.
type Balance struct {
	BossMaxHP   float32 `yaml:"boss_max_hp"`
	PlayerMaxHP float32 `yaml:"player_max_hp"`
	PlayerSpeed float32 `yaml:"player_speed"`
	BossSpeed   float32 `yaml:"boss_speed"`

	RifleDmg     float32 `yaml:"rifle_dmg"`
	RifleRate    float32 `yaml:"rifle_rate"`
	DirectHitDmg float32 `yaml:"direct_hit_dmg"`
	DirectHitCd  float32 `yaml:"direct_hit_cd"`

	TwinHP     float32 `yaml:"twin_hp"`
	VoidTwinHP float32 `yaml:"void_twin_hp"`
	EliteHP    float32 `yaml:"elite_hp"`
	TitanHP    float32 `yaml:"titan_hp"`
	GeneralHP  float32 `yaml:"general_hp"`
	FootmanHP  float32 `yaml:"footman_hp"`
	AllyHP     float32 `yaml:"ally_hp"`
	GuardianHP float32 `yaml:"guardian_hp"`

	ThrowCd         float32 `yaml:"throw_cd"`
	BastionDuration float32 `yaml:"bastion_duration"`
	BastionCd       float32 `yaml:"bastion_cd"`
	LamentDmg       float32 `yaml:"lament_dmg"`
	VoidCannonDmg   float32 `yaml:"void_cannon_dmg"`
}

type Difficulty struct {
	Name string `yaml:"-"`
	// Mult scales damage taken by the player.
	Mult float32 `yaml:"mult"`
	// Aggression is the boss AI decision interval in milliseconds.
	Aggression int    `yaml:"aggression"`
	Label      string `yaml:"label"`
}

func (d Difficulty) AggressionInterval() time.Duration {
	return time.Duration(d.Aggression) * time.Millisecond
}

type PlayerDefaults struct {
	HP     float32 `yaml:"hp"`
	MaxHP  float32 `yaml:"max_hp"`
	Shield float32 `yaml:"shield"`
}

type EffectsConfig struct {
	MaxParticles int     `yaml:"max_particles"`
	PointSize    float32 `yaml:"point_size"`
	Opacity      float32 `yaml:"opacity"`
}

type Config struct {
	Balance      Balance               `yaml:"balance"`
	Difficulties map[string]Difficulty `yaml:"difficulties"`
	Player       PlayerDefaults        `yaml:"player"`
	Effects      EffectsConfig         `yaml:"effects"`
}

// DefaultConfig returns the built-in table.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultStats)
	if err != nil {
		panic(fmt.Sprintf("embedded stats.yaml: %v", err))
	}
	return cfg
}

// ParseConfig decodes data over the built-in defaults. Keys missing from data keep their default.
func ParseConfig(data []byte) (Config, error) {
	var defaults, cfg Config
	if err := yaml.Unmarshal(defaultStats, &defaults); err != nil {
		return Config{}, fmt.Errorf("decode defaults: %w", err)
	}
	if err := yaml.Unmarshal(defaultStats, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Difficulties = normalizeDifficulties(cfg.Difficulties)
	// map entries are decoded from zero, so backfill what an override left out
	for name, d := range cfg.Difficulties {
		if base, ok := defaults.Difficulties[name]; ok {
			if d.Mult == 0 {
				d.Mult = base.Mult
			}
			if d.Aggression == 0 {
				d.Aggression = base.Aggression
			}
			if d.Label == "" {
				d.Label = base.Label
			}
		}
		d.Name = name
		cfg.Difficulties[name] = d
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalizeDifficulties upper-cases keys so "hard" overrides HARD. Set fields
// of a lower-case spelling win over the upper-case entry.
func normalizeDifficulties(in map[string]Difficulty) map[string]Difficulty {
	out := make(map[string]Difficulty, len(in))
	for name, d := range in {
		if key := strings.ToUpper(strings.TrimSpace(name)); key == name {
			out[key] = d
		}
	}
	for name, d := range in {
		key := strings.ToUpper(strings.TrimSpace(name))
		if key == name {
			continue
		}
		merged := out[key]
		if d.Mult != 0 {
			merged.Mult = d.Mult
		}
		if d.Aggression != 0 {
			merged.Aggression = d.Aggression
		}
		if d.Label != "" {
			merged.Label = d.Label
		}
		out[key] = merged
	}
	return out
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	positive := map[string]float32{
		"boss_max_hp":   c.Balance.BossMaxHP,
		"player_max_hp": c.Balance.PlayerMaxHP,
		"player_speed":  c.Balance.PlayerSpeed,
		"boss_speed":    c.Balance.BossSpeed,
	}
	for _, key := range sortedKeys(positive) {
		if positive[key] <= 0 {
			return fmt.Errorf("balance.%s must be positive, got %v", key, positive[key])
		}
	}
	if c.Effects.MaxParticles <= 0 {
		return fmt.Errorf("effects.max_particles must be positive, got %d", c.Effects.MaxParticles)
	}
	if _, ok := c.Difficulties["NORMAL"]; !ok {
		return fmt.Errorf("difficulties: NORMAL is required")
	}
	for _, name := range sortedKeys(c.Difficulties) {
		d := c.Difficulties[name]
		if d.Mult <= 0 {
			return fmt.Errorf("difficulties.%s.mult must be positive, got %v", name, d.Mult)
		}
		if d.Aggression <= 0 {
			return fmt.Errorf("difficulties.%s.aggression must be positive, got %d", name, d.Aggression)
		}
	}
	return nil
}

// Difficulty looks up a difficulty by key, case-insensitively.
func (c Config) Difficulty(name string) (Difficulty, error) {
	if d, ok := c.Difficulties[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return d, nil
	}
	return Difficulty{}, fmt.Errorf("%w %q (have %s)", ErrUnknownDifficulty, name, strings.Join(sortedKeys(c.Difficulties), ", "))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
