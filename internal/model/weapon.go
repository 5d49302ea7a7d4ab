package model

import (
	"fmt"
	"math/rand/v2"
)

// Weapon — конкретный экземпляр оружия с износом и зачарованиями.
type Weapon struct {
	objectID uint32
	damage   int32 // accumulated durability damage (0 = pristine)
	broken   bool

	template     *WeaponTemplate
	enchantments EnchantmentSet

	intN func(n int) int // Unbreaking roll source, [0,n)
}

// NewWeapon создаёт экземпляр оружия по шаблону.
func NewWeapon(objectID uint32, template *WeaponTemplate) (*Weapon, error) {
	if template == nil {
		return nil, fmt.Errorf("template cannot be nil")
	}
	if template.MaxDamage < 0 {
		return nil, fmt.Errorf("max damage must be >= 0, got %d", template.MaxDamage)
	}
	return &Weapon{objectID: objectID, template: template, intN: rand.IntN}, nil
}

// SetRandomSource replaces the Unbreaking roll source. fn(n) must return a
// value in [0,n); any non-zero roll absorbs one point of wear.
func (w *Weapon) SetRandomSource(fn func(n int) int) {
	w.intN = fn
}

// ObjectID возвращает unique ID экземпляра.
func (w *Weapon) ObjectID() uint32 {
	return w.objectID
}

// ItemID возвращает template ID.
func (w *Weapon) ItemID() int32 {
	return w.template.ItemID
}

// Name returns the template name.
func (w *Weapon) Name() string {
	return w.template.Name
}

// Template возвращает шаблон оружия.
func (w *Weapon) Template() *WeaponTemplate {
	return w.template
}

// AttackDamage returns the configured attack damage of a normal strike.
func (w *Weapon) AttackDamage() float64 {
	return w.template.AttackDamage
}

// Damage returns accumulated durability damage.
func (w *Weapon) Damage() int32 {
	return w.damage
}

// MaxDamage returns the durability ceiling.
func (w *Weapon) MaxDamage() int32 {
	return w.template.MaxDamage
}

// SetDamage sets accumulated damage directly (loading, repair).
func (w *Weapon) SetDamage(damage int32) {
	w.damage = max(damage, 0)
}

// IsDamageable reports whether the weapon wears at all.
func (w *Weapon) IsDamageable() bool {
	return w.template.MaxDamage > 0
}

// IsExhausted reports whether the weapon is one point from breaking
// (or already broken). Such a weapon cannot start a charged use.
func (w *Weapon) IsExhausted() bool {
	if w.broken {
		return true
	}
	return w.IsDamageable() && w.damage >= w.template.MaxDamage-1
}

// IsBroken reports whether the weapon has been destroyed by wear.
func (w *Weapon) IsBroken() bool {
	return w.broken
}

// Enchantments returns the weapon's enchantment set.
func (w *Weapon) Enchantments() *EnchantmentSet {
	return &w.enchantments
}

// DamageItem applies amount points of wear.
// Each point may be absorbed by Unbreaking (chance level/(level+1)).
// onBreak is called once when the weapon breaks; it may be nil.
func (w *Weapon) DamageItem(amount int32, onBreak func(*Weapon)) {
	if !w.IsDamageable() || w.broken || amount <= 0 {
		return
	}

	if level := w.enchantments.Level(Unbreaking.Name()); level > 0 {
		absorbed := int32(0)
		for range amount {
			if w.intN(int(level)+1) > 0 {
				absorbed++
			}
		}
		amount -= absorbed
		if amount <= 0 {
			return
		}
	}

	w.damage += amount
	if w.damage >= w.template.MaxDamage {
		w.damage = w.template.MaxDamage
		w.broken = true
		if onBreak != nil {
			onBreak(w)
		}
	}
}
