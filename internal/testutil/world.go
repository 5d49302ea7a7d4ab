package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/katana/internal/game/geo"
	"github.com/udisondev/katana/internal/model"
	"github.com/udisondev/katana/internal/world"
)

// FlatFloor возвращает сетку со сплошным полом на y = -1
// в квадрате [-half, half] по X и Z.
func FlatFloor(t testing.TB, half int32) *geo.Grid {
	t.Helper()
	g := geo.NewGrid()
	g.Fill(model.BlockPos{X: -half, Y: -1, Z: -half}, model.BlockPos{X: half, Y: -1, Z: half}, geo.BlockSolid)
	return g
}

// NewKatana создаёт оружие по шаблону Fixtures.Katana.
func NewKatana(t testing.TB, objectID uint32) *model.Weapon {
	t.Helper()
	w, err := model.NewWeapon(objectID, Fixtures.Katana)
	require.NoError(t, err)
	return w
}

// NewActor создаёт актёра в pos с высотой глаз 0, чтобы луч шёл ровно из pos.
func NewActor(t testing.TB, w *world.World, objectID uint32, pos model.Vec3) *model.Actor {
	t.Helper()
	a := model.NewActor(objectID, "tester", pos)
	a.SetEyeHeight(0)
	if w != nil {
		require.NoError(t, w.AddActor(a))
	}
	return a
}

// SpawnMob создаёт моба с габаритами из Fixtures и добавляет его в мир.
func SpawnMob(t testing.TB, w *world.World, objectID uint32, pos model.Vec3, hostile bool) *model.Mob {
	t.Helper()
	m, err := model.NewMob(objectID, "zombie", pos, hostile, Fixtures.MobWidth, Fixtures.MobHeight, Fixtures.MobHP)
	require.NoError(t, err)
	require.NoError(t, w.AddMob(m))
	return m
}
