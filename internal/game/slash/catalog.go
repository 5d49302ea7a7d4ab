package slash

import (
	"log/slog"
	"slices"

	"github.com/udisondev/katana/internal/game/effect"
	"github.com/udisondev/katana/internal/model"
)

// Catalog holds the named hit modifiers available to weapons.
// Status-effect modifiers apply their debuffs through the shared effect managers.
type Catalog struct {
	effects *effect.Managers
	byName  map[string]HitModifier
}

// NewCatalog creates a catalog with the stock modifiers registered.
func NewCatalog(effects *effect.Managers) *Catalog {
	c := &Catalog{
		effects: effects,
		byName:  make(map[string]HitModifier),
	}

	c.Register(NewSlashEnchantment("flame",
		"minecraft:item.firecharge.use", "minecraft:flame",
		c.debuff("Burning", "burning", 1, 100, 20, map[string]string{"power": "1"})))

	c.Register(NewSlashEnchantment("frost",
		"minecraft:block.glass.break", "minecraft:snowflake",
		c.debuff("Frostbite", "frostbite", 2, 300, 0, map[string]string{"amplifier": "2"})))

	c.Register(NewSlashEnchantment("venom",
		"minecraft:entity.spider.ambient", "minecraft:item_slime",
		c.debuff("Poison", "poison", 1, 100, 25, map[string]string{"power": "1"})))

	c.Register(NewSlashEnchantment("echo",
		"minecraft:block.amethyst_block.chime", "minecraft:end_rod", nil))

	return c
}

// Register adds or replaces a modifier by name.
func (c *Catalog) Register(m HitModifier) {
	c.byName[m.Name()] = m
}

// Get returns a modifier by name.
func (c *Catalog) Get(name string) (HitModifier, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// Names returns registered modifier names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// debuff builds a HitFunc that puts a status effect on the struck mob.
func (c *Catalog) debuff(effectName, abnormalType string, level, ticks, period int32, params map[string]string) HitFunc {
	return func(target *model.Mob, actor *model.Actor, _ *model.Weapon) {
		eff, err := effect.CreateEffect(effectName, params)
		if err != nil {
			slog.Warn("failed to create effect",
				"effect", effectName,
				"error", err)
			return
		}

		added := c.effects.Get(target.ObjectID()).AddDebuff(target, &effect.ActiveEffect{
			SourceID:       actor.ObjectID(),
			Effect:         eff,
			RemainingTicks: ticks,
			PeriodTicks:    period,
			AbnormalType:   abnormalType,
			AbnormalLevel:  level,
		})

		slog.Debug("slash debuff",
			"effect", effectName,
			"level", level,
			"target", target.ObjectID(),
			"added", added)
	}
}
