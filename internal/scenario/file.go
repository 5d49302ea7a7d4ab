package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/katana/internal/game/geo"
	"github.com/udisondev/katana/internal/model"
)

// Point is an [x, y, z] triple in scenario files.
type Point model.Vec3

// UnmarshalYAML accepts a three-element sequence of numbers.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var xyz []float64
	if err := node.Decode(&xyz); err != nil {
		return fmt.Errorf("line %d: point: %w", node.Line, err)
	}
	if len(xyz) != 3 {
		return fmt.Errorf("line %d: point needs 3 coordinates, got %d", node.Line, len(xyz))
	}
	for _, c := range xyz {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("line %d: point coordinate %v is not finite", node.Line, c)
		}
	}
	*p = Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	return nil
}

// Vec returns p as a model vector.
func (p Point) Vec() model.Vec3 {
	return model.Vec3(p)
}

// File is the on-disk scenario layout.
type File struct {
	Name    string      `yaml:"name"`
	Terrain Terrain     `yaml:"terrain"`
	Actor   ActorDef    `yaml:"actor"`
	Weapon  WeaponDef   `yaml:"weapon"`
	Mobs    []MobDef    `yaml:"mobs"`
	Actions []ActionDef `yaml:"actions"`
}

// Terrain lists the blocks to place; fills run before single blocks.
type Terrain struct {
	Fills  []FillDef  `yaml:"fills"`
	Blocks []BlockDef `yaml:"blocks"`
}

type FillDef struct {
	From  Point  `yaml:"from"`
	To    Point  `yaml:"to"`
	Block string `yaml:"block"`
}

type BlockDef struct {
	At    Point  `yaml:"at"`
	Block string `yaml:"block"`
}

type ActorDef struct {
	Name      string   `yaml:"name"`
	Position  Point    `yaml:"position"`
	Look      *Point   `yaml:"look"`
	EyeHeight *float64 `yaml:"eye_height"`
}

type WeaponDef struct {
	ItemID       int32            `yaml:"item_id"`
	Name         string           `yaml:"name"`
	AttackDamage float64          `yaml:"attack_damage"`
	MaxDamage    int32            `yaml:"max_damage"`
	Damage       int32            `yaml:"damage"`
	Enchantments []EnchantmentDef `yaml:"enchantments"`
}

type EnchantmentDef struct {
	Name  string `yaml:"name"`
	Level int32  `yaml:"level"`
}

type MobDef struct {
	Name     string  `yaml:"name"`
	Position Point   `yaml:"position"`
	Hostile  bool    `yaml:"hostile"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	HP       float64 `yaml:"hp"`
}

type ActionDef struct {
	Tick      int64  `yaml:"tick"`
	Action    string `yaml:"action"`
	Direction *Point `yaml:"direction"`
}

// Mob defaults when a definition leaves the hitbox or HP unset.
const (
	defaultMobWidth  = 0.6
	defaultMobHeight = 1.95
	defaultMobHP     = 20
)

// Load reads and parses a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("validating scenario: %w", err)
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	if f.Actor.Name == "" {
		f.Actor.Name = "ronin"
	}
	for i := range f.Mobs {
		m := &f.Mobs[i]
		if m.Name == "" {
			m.Name = "mob"
		}
		if m.Width == 0 {
			m.Width = defaultMobWidth
		}
		if m.Height == 0 {
			m.Height = defaultMobHeight
		}
		if m.HP == 0 {
			m.HP = defaultMobHP
		}
	}
	for i := range f.Weapon.Enchantments {
		if f.Weapon.Enchantments[i].Level == 0 {
			f.Weapon.Enchantments[i].Level = 1
		}
	}
}

// Validate checks the parts of a scenario Build cannot recover from.
func (f *File) Validate() error {
	var errs []error

	if f.Weapon.Name == "" {
		errs = append(errs, errors.New("weapon.name is required"))
	}
	if f.Weapon.AttackDamage < 0 {
		errs = append(errs, fmt.Errorf("weapon.attack_damage must be >= 0, got %v", f.Weapon.AttackDamage))
	}
	for i, fill := range f.Terrain.Fills {
		if _, ok := geo.ParseBlockKind(fill.Block); !ok {
			errs = append(errs, fmt.Errorf("terrain.fills[%d]: unknown block %q", i, fill.Block))
		}
	}
	for i, b := range f.Terrain.Blocks {
		if _, ok := geo.ParseBlockKind(b.Block); !ok {
			errs = append(errs, fmt.Errorf("terrain.blocks[%d]: unknown block %q", i, b.Block))
		}
	}
	for i, a := range f.Actions {
		if _, ok := ParseActionKind(a.Action); !ok {
			errs = append(errs, fmt.Errorf("actions[%d]: unknown action %q", i, a.Action))
			continue
		}
		if a.Tick < 0 {
			errs = append(errs, fmt.Errorf("actions[%d]: tick must be >= 0, got %d", i, a.Tick))
		}
		if a.Action == string(ActionLook) && a.Direction == nil {
			errs = append(errs, fmt.Errorf("actions[%d]: look needs a direction", i))
		}
	}

	return errors.Join(errs...)
}
