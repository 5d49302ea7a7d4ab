package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMob_Validation(t *testing.T) {
	_, err := NewMob(1, "zombie", Vec3{}, true, 0, 1.95, 20)
	assert.Error(t, err)

	_, err = NewMob(1, "zombie", Vec3{}, true, 0.6, 1.95, 0)
	assert.Error(t, err)
}

func TestMob_Bounds(t *testing.T) {
	m, err := NewMob(1, "zombie", Vec3{X: 5, Y: 0, Z: 0}, true, 0.6, 1.95, 20)
	require.NoError(t, err)

	b := m.Bounds()
	assert.InDelta(t, 4.7, b.Min.X, 1e-9)
	assert.InDelta(t, 5.3, b.Max.X, 1e-9)
	assert.InDelta(t, 0.0, b.Min.Y, 1e-9)
	assert.InDelta(t, 1.95, b.Max.Y, 1e-9)
	assert.Same(t, m, m.Data)
}

func TestMob_ApplyDamage(t *testing.T) {
	m, err := NewMob(2, "skeleton", Vec3{}, true, 0.6, 1.99, 10)
	require.NoError(t, err)
	attacker := NewActor(9, "Steve", Vec3{})

	assert.False(t, m.ApplyDamage(attacker, 0))
	assert.True(t, m.ApplyDamage(attacker, 4))
	assert.InDelta(t, 6.0, m.CurrentHP(), 1e-9)
	assert.Equal(t, uint32(9), m.LastAttacker())

	assert.True(t, m.ApplyDamage(nil, 100))
	assert.True(t, m.IsDead())
	assert.Equal(t, 0.0, m.CurrentHP())
	assert.False(t, m.ApplyDamage(attacker, 1), "dead mob ignores damage")
}

func TestMob_DamageTakenMultiplier(t *testing.T) {
	m, err := NewMob(3, "zombie", Vec3{}, true, 0.6, 1.95, 20)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.DamageTakenMultiplier())

	m.SetDamageTakenMultiplier(1.5)
	assert.True(t, m.ApplyDamage(nil, 4))
	assert.InDelta(t, 14.0, m.CurrentHP(), 1e-9)

	m.ReduceHP(2)
	assert.InDelta(t, 12.0, m.CurrentHP(), 1e-9, "status damage is not scaled")

	m.SetDamageTakenMultiplier(-1)
	assert.Equal(t, 0.0, m.DamageTakenMultiplier())
}

func TestActor_Teleport(t *testing.T) {
	a := NewActor(1, "Steve", Vec3{X: 1, Y: 64, Z: 1})

	var gotFrom Vec3
	calls := 0
	a.SetMoveListener(func(obj *WorldObject, from Vec3) {
		calls++
		gotFrom = from
		assert.Equal(t, Vec3{X: 10, Y: 63, Z: 1}, obj.Position())
	})

	a.Teleport(Vec3{X: 10, Y: 63, Z: 1})
	assert.Equal(t, 1, calls)
	assert.Equal(t, Vec3{X: 1, Y: 64, Z: 1}, gotFrom)
	assert.InDelta(t, 64.62, a.EyePosition().Y, 1e-9)
}

func TestActor_SetLook_Normalizes(t *testing.T) {
	a := NewActor(1, "Steve", Vec3{})
	a.SetLook(Vec3{X: 0, Y: 0, Z: -4})
	assert.Equal(t, Vec3{Z: -1}, a.Look())
}
