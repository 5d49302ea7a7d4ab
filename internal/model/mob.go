package model

import "fmt"

// Mob — существо в мире (враждебное или мирное) с HP и хитбоксом.
type Mob struct {
	*WorldObject

	hostile bool
	width   float64
	height  float64

	currentHP   float64
	maxHP       float64
	dead        bool
	damageTaken float64 // multiplier on incoming strikes, 1 = unchanged

	lastAttacker uint32 // objectID of the last actor that damaged this mob
}

// NewMob создаёт существо. width/height задают хитбокс (основание по центру позиции).
func NewMob(objectID uint32, name string, pos Vec3, hostile bool, width, height, maxHP float64) (*Mob, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mob %s: hitbox must be positive, got %.2fx%.2f", name, width, height)
	}
	if maxHP <= 0 {
		return nil, fmt.Errorf("mob %s: maxHP must be > 0, got %.2f", name, maxHP)
	}
	m := &Mob{
		WorldObject: NewWorldObject(objectID, name, pos),
		hostile:     hostile,
		width:       width,
		height:      height,
		currentHP:   maxHP,
		maxHP:       maxHP,
		damageTaken: 1,
	}
	m.WorldObject.Data = m
	return m, nil
}

// IsHostile reports whether the mob belongs to the hostile class.
func (m *Mob) IsHostile() bool {
	return m.hostile
}

// Bounds returns the mob's hitbox in world space.
func (m *Mob) Bounds() Box {
	pos := m.Position()
	hw := m.width / 2
	return NewBox(pos.Offset(-hw, 0, -hw), pos.Offset(hw, m.height, hw))
}

// CurrentHP returns current health.
func (m *Mob) CurrentHP() float64 {
	return m.currentHP
}

// MaxHP returns maximum health.
func (m *Mob) MaxHP() float64 {
	return m.maxHP
}

// IsDead reports whether health reached zero.
func (m *Mob) IsDead() bool {
	return m.dead
}

// LastAttacker returns the objectID of the last damaging actor (0 if none).
func (m *Mob) LastAttacker() uint32 {
	return m.lastAttacker
}

// DamageTakenMultiplier returns the current scale applied by ApplyDamage.
func (m *Mob) DamageTakenMultiplier() float64 {
	return m.damageTaken
}

// SetDamageTakenMultiplier sets the scale applied to incoming strikes.
// Negative values are clamped to zero.
func (m *Mob) SetDamageTakenMultiplier(f float64) {
	m.damageTaken = max(f, 0)
}

// ApplyDamage наносит урон от source с учётом DamageTakenMultiplier.
// Возвращает false, если урон не прошёл (моб мёртв или amount <= 0).
func (m *Mob) ApplyDamage(source *Actor, amount float64) bool {
	if m.dead || amount <= 0 {
		return false
	}
	if source != nil {
		m.lastAttacker = source.ObjectID()
	}
	m.ReduceHP(amount * m.damageTaken)
	return true
}

// ReduceHP lowers health without an attacker (status effects, environment).
func (m *Mob) ReduceHP(amount float64) {
	if m.dead || amount <= 0 {
		return
	}
	m.currentHP -= amount
	if m.currentHP <= 0 {
		m.currentHP = 0
		m.dead = true
	}
}
