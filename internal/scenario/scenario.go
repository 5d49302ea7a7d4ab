package scenario

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/katana/internal/game/geo"
	"github.com/udisondev/katana/internal/game/slash"
	"github.com/udisondev/katana/internal/model"
	"github.com/udisondev/katana/internal/world"
)

// ActionKind is a scripted actor input.
type ActionKind string

const (
	ActionBegin   ActionKind = "begin"   // start charging the weapon
	ActionRelease ActionKind = "release" // release the charge
	ActionCancel  ActionKind = "cancel"  // drop the charge
	ActionLook    ActionKind = "look"    // turn to a new aim direction
)

// ParseActionKind validates an action name.
func ParseActionKind(s string) (ActionKind, bool) {
	switch k := ActionKind(s); k {
	case ActionBegin, ActionRelease, ActionCancel, ActionLook:
		return k, true
	default:
		return "", false
	}
}

// Action is one scripted input at a tick.
type Action struct {
	Tick      int64
	Kind      ActionKind
	Direction model.Vec3 // ActionLook only
}

// Scenario is a ready-to-run simulation: terrain, entities and the script.
type Scenario struct {
	Name    string
	Grid    *geo.Grid
	World   *world.World
	Actor   *model.Actor
	Weapon  *model.Weapon
	Actions []Action // sorted by tick, stable within a tick
}

// Build materializes f. Weapon enchantments are looked up first among the
// passive enchantments, then among the catalog's hit modifiers.
func Build(f *File, catalog *slash.Catalog, ids *world.ObjectIDGenerator) (*Scenario, error) {
	sc := &Scenario{
		Name:  f.Name,
		Grid:  geo.NewGrid(),
		World: world.NewWorld(),
	}

	for _, fill := range f.Terrain.Fills {
		kind, _ := geo.ParseBlockKind(fill.Block)
		sc.Grid.Fill(fill.From.Vec().BlockPos(), fill.To.Vec().BlockPos(), kind)
	}
	for _, b := range f.Terrain.Blocks {
		kind, _ := geo.ParseBlockKind(b.Block)
		sc.Grid.SetBlock(b.At.Vec().BlockPos(), kind)
	}

	sc.Actor = model.NewActor(ids.NextActorID(), f.Actor.Name, f.Actor.Position.Vec())
	if f.Actor.Look != nil {
		sc.Actor.SetLook(f.Actor.Look.Vec())
	}
	if f.Actor.EyeHeight != nil {
		sc.Actor.SetEyeHeight(*f.Actor.EyeHeight)
	}
	if err := sc.World.AddActor(sc.Actor); err != nil {
		return nil, fmt.Errorf("adding actor: %w", err)
	}

	weapon, err := buildWeapon(f.Weapon, catalog, ids)
	if err != nil {
		return nil, err
	}
	sc.Weapon = weapon

	for i, def := range f.Mobs {
		m, err := model.NewMob(ids.NextMobID(), def.Name, def.Position.Vec(), def.Hostile, def.Width, def.Height, def.HP)
		if err != nil {
			return nil, fmt.Errorf("mobs[%d]: %w", i, err)
		}
		if err := sc.World.AddMob(m); err != nil {
			return nil, fmt.Errorf("mobs[%d]: %w", i, err)
		}
	}

	for _, def := range f.Actions {
		kind, _ := ParseActionKind(def.Action)
		a := Action{Tick: def.Tick, Kind: kind}
		if def.Direction != nil {
			a.Direction = def.Direction.Vec()
		}
		sc.Actions = append(sc.Actions, a)
	}
	slices.SortStableFunc(sc.Actions, func(a, b Action) int {
		return cmp.Compare(a.Tick, b.Tick)
	})

	slog.Info("scenario built",
		"name", sc.Name,
		"blocks", sc.Grid.BlockCount(),
		"mobs", sc.World.MobCount(),
		"regions", sc.World.RegionCount(),
		"actors", sc.World.ActorCount(),
		"actions", len(sc.Actions),
		"weapon", sc.Weapon.Name())

	return sc, nil
}

func buildWeapon(def WeaponDef, catalog *slash.Catalog, ids *world.ObjectIDGenerator) (*model.Weapon, error) {
	template := &model.WeaponTemplate{
		ItemID:       def.ItemID,
		Name:         def.Name,
		AttackDamage: def.AttackDamage,
		MaxDamage:    def.MaxDamage,
	}
	w, err := model.NewWeapon(ids.NextWeaponID(), template)
	if err != nil {
		return nil, fmt.Errorf("weapon %s: %w", def.Name, err)
	}
	w.SetDamage(def.Damage)

	for _, ed := range def.Enchantments {
		e, err := lookupEnchantment(ed.Name, catalog)
		if err != nil {
			return nil, fmt.Errorf("weapon %s: %w", def.Name, err)
		}
		if err := w.Enchantments().Add(e, ed.Level); err != nil {
			return nil, fmt.Errorf("weapon %s: %w", def.Name, err)
		}
	}
	return w, nil
}

func lookupEnchantment(name string, catalog *slash.Catalog) (model.Enchantment, error) {
	switch name {
	case model.Sharpness.Name():
		return model.Sharpness, nil
	case model.Unbreaking.Name():
		return model.Unbreaking, nil
	}
	if catalog != nil {
		if m, ok := catalog.Get(name); ok {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unknown enchantment %q", name)
}

// ActionsAt returns the scripted actions for tick.
func (sc *Scenario) ActionsAt(tick int64) []Action {
	start, _ := slices.BinarySearchFunc(sc.Actions, tick, func(a Action, t int64) int {
		return cmp.Compare(a.Tick, t)
	})
	end := start
	for end < len(sc.Actions) && sc.Actions[end].Tick == tick {
		end++
	}
	return sc.Actions[start:end]
}

// LastTick returns the tick of the final scripted action, or -1 if none.
func (sc *Scenario) LastTick() int64 {
	if len(sc.Actions) == 0 {
		return -1
	}
	return sc.Actions[len(sc.Actions)-1].Tick
}
