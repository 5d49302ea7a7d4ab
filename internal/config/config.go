package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ability holds tuning for the charged slash.
type Ability struct {
	MinChargeTicks   int64   `yaml:"min_charge_ticks"`   // shortest hold that still slashes
	MaxUseTicks      int64   `yaml:"max_use_ticks"`      // safety cap on a single hold
	CooldownTicks    int64   `yaml:"cooldown_ticks"`     // reuse delay after a slash
	MaxRange         float64 `yaml:"max_range"`          // forward ray length, blocks
	SearchHalfExtent float64 `yaml:"search_half_extent"` // half-size of the per-step target box
	DamageDivisor    float64 `yaml:"damage_divisor"`     // slash damage = attack damage / divisor
	BurstYOffset     float64 `yaml:"burst_y_offset"`     // particle lift above the sample point
	DurabilityCost   int32   `yaml:"durability_cost"`    // wear per slash

	// LevelAim drops the vertical component of the aim before casting the
	// ray, so a slash always travels horizontally whatever the pitch, as the
	// katana mod does. The flattened vector is not renormalised, so a steep
	// look also shortens the reach. Set false to cast along the full look
	// direction.
	LevelAim bool `yaml:"level_aim"`
}

// DefaultAbility returns Ability tuned like the katana: 10-tick minimum
// charge, 10 s cooldown, 16-block reach, half damage.
func DefaultAbility() Ability {
	return Ability{
		MinChargeTicks:   10,
		MaxUseTicks:      72000,
		CooldownTicks:    200,
		MaxRange:         16,
		SearchHalfExtent: 2,
		DamageDivisor:    2,
		BurstYOffset:     0.5,
		DurabilityCost:   1,
		LevelAim:         true,
	}
}

// Validate rejects tuning the engine cannot run with.
func (a Ability) Validate() error {
	var errs []error
	if a.MinChargeTicks < 0 {
		errs = append(errs, fmt.Errorf("min_charge_ticks must be >= 0, got %d", a.MinChargeTicks))
	}
	if a.MaxUseTicks <= a.MinChargeTicks {
		errs = append(errs, fmt.Errorf("max_use_ticks (%d) must exceed min_charge_ticks (%d)", a.MaxUseTicks, a.MinChargeTicks))
	}
	if a.CooldownTicks < 0 {
		errs = append(errs, fmt.Errorf("cooldown_ticks must be >= 0, got %d", a.CooldownTicks))
	}
	if a.MaxRange <= 0 {
		errs = append(errs, fmt.Errorf("max_range must be > 0, got %v", a.MaxRange))
	}
	if a.SearchHalfExtent <= 0 {
		errs = append(errs, fmt.Errorf("search_half_extent must be > 0, got %v", a.SearchHalfExtent))
	}
	if a.DamageDivisor <= 0 {
		errs = append(errs, fmt.Errorf("damage_divisor must be > 0, got %v", a.DamageDivisor))
	}
	if a.DurabilityCost < 0 {
		errs = append(errs, fmt.Errorf("durability_cost must be >= 0, got %d", a.DurabilityCost))
	}
	return errors.Join(errs...)
}

// Simulation holds configuration for the slashsim runner.
type Simulation struct {
	LogLevel     string  `yaml:"log_level"`
	TickRate     int     `yaml:"tick_rate"`     // ticks per second of wall time; 0 = as fast as possible
	MaxTicks     int64   `yaml:"max_ticks"`     // stop after this many ticks
	ScenarioPath string  `yaml:"scenario_path"` // yaml scenario to play
	Ability      Ability `yaml:"ability"`
}

// DefaultSimulation returns Simulation config with sensible defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		LogLevel:     "info",
		TickRate:     20,
		MaxTicks:     1200,
		ScenarioPath: "config/scenario.yaml",
		Ability:      DefaultAbility(),
	}
}

// Validate checks the whole simulation config.
func (s Simulation) Validate() error {
	var errs []error
	if s.TickRate < 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be >= 0, got %d", s.TickRate))
	}
	if s.MaxTicks <= 0 {
		errs = append(errs, fmt.Errorf("max_ticks must be > 0, got %d", s.MaxTicks))
	}
	if err := s.Ability.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ability: %w", err))
	}
	return errors.Join(errs...)
}

// LoadSimulation loads simulation config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
