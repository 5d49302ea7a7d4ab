package slash

import "github.com/udisondev/katana/internal/model"

// HitModifier is a weapon enchantment that changes a slash's signature:
// an extra particle trail, a strike sound, and a per-target side effect.
// A weapon carries at most one.
type HitModifier interface {
	model.Enchantment
	Sound() SoundID
	Particle() ParticleID
	OnHit(target *model.Mob, actor *model.Actor, weapon *model.Weapon)
}

// HitFunc is the side effect a modifier runs on each newly struck target.
type HitFunc func(target *model.Mob, actor *model.Actor, weapon *model.Weapon)

// SlashEnchantment is the standard HitModifier implementation.
type SlashEnchantment struct {
	name     string
	sound    SoundID
	particle ParticleID
	onHit    HitFunc // nil = cosmetic only
}

// NewSlashEnchantment creates a slash modifier. onHit may be nil.
func NewSlashEnchantment(name string, sound SoundID, particle ParticleID, onHit HitFunc) *SlashEnchantment {
	return &SlashEnchantment{
		name:     name,
		sound:    sound,
		particle: particle,
		onHit:    onHit,
	}
}

func (e *SlashEnchantment) Name() string         { return e.name }
func (e *SlashEnchantment) Sound() SoundID       { return e.sound }
func (e *SlashEnchantment) Particle() ParticleID { return e.particle }

// CanAccept rejects every other hit modifier.
func (e *SlashEnchantment) CanAccept(other model.Enchantment) bool {
	return IsCompatibleModifier(other)
}

func (e *SlashEnchantment) OnHit(target *model.Mob, actor *model.Actor, weapon *model.Weapon) {
	if e.onHit != nil {
		e.onHit(target, actor, weapon)
	}
}

// IsCompatibleModifier reports whether other may share a weapon with a hit
// modifier: only enchantments that are not hit modifiers themselves can.
func IsCompatibleModifier(other model.Enchantment) bool {
	_, isModifier := other.(HitModifier)
	return !isModifier
}

// ModifierOf returns the weapon's hit modifier, or nil if it has none.
func ModifierOf(weapon *model.Weapon) HitModifier {
	if weapon == nil {
		return nil
	}
	for _, entry := range weapon.Enchantments().Entries() {
		if m, ok := entry.Enchantment.(HitModifier); ok {
			return m
		}
	}
	return nil
}
