package slash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/katana/internal/config"
	"github.com/udisondev/katana/internal/game/slash"
	"github.com/udisondev/katana/internal/model"
	"github.com/udisondev/katana/internal/testutil"
	"github.com/udisondev/katana/internal/world"
)

func newChargeFixture(t *testing.T) (*slash.ChargeManager, *testutil.CountingSweeper, *model.Actor, *model.Weapon) {
	t.Helper()
	sweeper := &testutil.CountingSweeper{}
	cm := slash.NewChargeManager(config.DefaultAbility(), sweeper)
	actor := testutil.NewActor(t, nil, 1, model.Vec3{})
	weapon := testutil.NewKatana(t, 100)
	return cm, sweeper, actor, weapon
}

var aimForward = slash.Aim{Direction: model.Vec3{X: 1}}

func TestBeginCharge(t *testing.T) {
	cm, _, actor, weapon := newChargeFixture(t)

	require.True(t, cm.BeginCharge(actor, weapon, 100))
	assert.Equal(t, slash.StateCharging, cm.State(actor.ObjectID()))

	session := cm.Session(actor.ObjectID())
	require.NotNil(t, session)
	assert.Equal(t, int64(100), session.StartTick)
	assert.Same(t, weapon, session.Weapon)

	assert.False(t, cm.BeginCharge(actor, weapon, 101), "already charging")
	assert.Equal(t, int64(100), cm.Session(actor.ObjectID()).StartTick)
}

func TestBeginCharge_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(actor *model.Actor, weapon *model.Weapon)
	}{
		{"worn out", func(_ *model.Actor, w *model.Weapon) { w.SetDamage(w.MaxDamage() - 1) }},
		{"cooling down", func(a *model.Actor, w *model.Weapon) { a.Cooldowns().Set(w.ItemID(), 0, 200) }},
		{"dead", func(a *model.Actor, _ *model.Weapon) { a.SetDead(true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm, _, actor, weapon := newChargeFixture(t)
			tt.setup(actor, weapon)

			assert.False(t, cm.BeginCharge(actor, weapon, 50))
			assert.Equal(t, slash.StateIdle, cm.State(actor.ObjectID()))
			assert.Nil(t, cm.Session(actor.ObjectID()))
		})
	}
}

func TestBeginCharge_OneBelowLimitIsAllowed(t *testing.T) {
	cm, _, actor, weapon := newChargeFixture(t)
	weapon.SetDamage(weapon.MaxDamage() - 2)
	assert.True(t, cm.BeginCharge(actor, weapon, 0))
}

func TestReleaseCharge_TooShort(t *testing.T) {
	for _, held := range []int64{0, 1, 9} {
		cm, sweeper, actor, weapon := newChargeFixture(t)
		require.True(t, cm.BeginCharge(actor, weapon, 0))

		outcome, _ := cm.ReleaseCharge(actor, weapon, held, aimForward)

		assert.Equal(t, slash.OutcomeAborted, outcome, "held %d", held)
		assert.Zero(t, sweeper.Calls)
		assert.Zero(t, weapon.Damage())
		assert.False(t, actor.Cooldowns().IsCoolingDown(weapon.ItemID(), held))
		assert.Zero(t, actor.Stats().Get(model.UsedStat(weapon.ItemID())))
		assert.Equal(t, slash.StateIdle, cm.State(actor.ObjectID()))
	}
}

func TestReleaseCharge_Qualifying(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)
	require.True(t, cm.BeginCharge(actor, weapon, 0))

	outcome, _ := cm.ReleaseCharge(actor, weapon, 10, aimForward)

	assert.Equal(t, slash.OutcomeSwept, outcome)
	assert.Equal(t, 1, sweeper.Calls)
	assert.Equal(t, int32(1), weapon.Damage())
	assert.Equal(t, int64(1), actor.Stats().Get(model.UsedStat(weapon.ItemID())))
	assert.Equal(t, slash.StateIdle, cm.State(actor.ObjectID()))

	ev := sweeper.Events[0]
	assert.Equal(t, aimForward.Direction, ev.Direction)
	assert.Equal(t, 16.0, ev.MaxRange)
	assert.Equal(t, int64(10), ev.ChargeDuration)

	// Cooldown runs 200 ticks from the release at tick 10.
	cd := actor.Cooldowns()
	assert.True(t, cd.IsCoolingDown(weapon.ItemID(), 10))
	assert.True(t, cd.IsCoolingDown(weapon.ItemID(), 209))
	assert.False(t, cm.BeginCharge(actor, weapon, 100), "cooldown blocks the next charge")
	assert.True(t, cm.BeginCharge(actor, weapon, 210))
}

func TestReleaseCharge_NoSession(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)

	outcome, _ := cm.ReleaseCharge(actor, weapon, 40, aimForward)

	assert.Equal(t, slash.OutcomeNoSession, outcome)
	assert.Zero(t, sweeper.Calls)
}

func TestReleaseCharge_DifferentWeapon(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)
	other := testutil.NewKatana(t, 101)
	require.True(t, cm.BeginCharge(actor, weapon, 0))

	outcome, _ := cm.ReleaseCharge(actor, other, 40, aimForward)

	assert.Equal(t, slash.OutcomeAborted, outcome)
	assert.Zero(t, sweeper.Calls)
	assert.Zero(t, weapon.Damage())
	assert.Zero(t, other.Damage())
	assert.Equal(t, slash.StateIdle, cm.State(actor.ObjectID()))
}

func TestReleaseCharge_WearsWeaponToLimit(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)
	weapon.SetDamage(weapon.MaxDamage() - 2)
	require.True(t, cm.BeginCharge(actor, weapon, 0))

	outcome, _ := cm.ReleaseCharge(actor, weapon, 30, aimForward)

	assert.Equal(t, slash.OutcomeSwept, outcome)
	assert.Equal(t, 1, sweeper.Calls)
	assert.False(t, weapon.IsBroken())
	assert.True(t, weapon.IsExhausted())
	assert.False(t, cm.BeginCharge(actor, weapon, 1000), "exhausted weapon cannot charge")
}

func TestReleaseCharge_UnbreakingAbsorbsWear(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)
	require.NoError(t, weapon.Enchantments().Add(model.Unbreaking, 3))
	weapon.SetRandomSource(func(n int) int { return n - 1 })
	require.True(t, cm.BeginCharge(actor, weapon, 0))

	outcome, _ := cm.ReleaseCharge(actor, weapon, 20, aimForward)

	assert.Equal(t, slash.OutcomeSwept, outcome)
	assert.Equal(t, 1, sweeper.Calls)
	assert.Zero(t, weapon.Damage(), "absorbed point leaves no wear")
	assert.True(t, actor.Cooldowns().IsCoolingDown(weapon.ItemID(), 20))
	assert.Equal(t, int64(1), actor.Stats().Get(model.UsedStat(weapon.ItemID())))
}

func TestRelease_UsesSessionStart(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)
	require.True(t, cm.BeginCharge(actor, weapon, 40))

	outcome, _ := cm.Release(actor, 45, aimForward)
	assert.Equal(t, slash.OutcomeAborted, outcome)

	require.True(t, cm.BeginCharge(actor, weapon, 50))
	outcome, _ = cm.Release(actor, 75, aimForward)
	assert.Equal(t, slash.OutcomeSwept, outcome)
	assert.Equal(t, int64(25), sweeper.Events[0].ChargeDuration)
	assert.True(t, actor.Cooldowns().IsCoolingDown(weapon.ItemID(), 274))
	assert.False(t, actor.Cooldowns().IsCoolingDown(weapon.ItemID(), 275))
}

func TestCancel(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)
	assert.False(t, cm.Cancel(actor))

	require.True(t, cm.BeginCharge(actor, weapon, 0))
	assert.True(t, cm.Cancel(actor))

	assert.Equal(t, slash.StateIdle, cm.State(actor.ObjectID()))
	assert.Zero(t, sweeper.Calls)
	assert.Zero(t, weapon.Damage())
	assert.False(t, actor.Cooldowns().IsCoolingDown(weapon.ItemID(), 1))
	assert.True(t, cm.BeginCharge(actor, weapon, 1), "cancel leaves no cooldown")
}

func TestTick_ExpiresLongHold(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)
	maxUse := config.DefaultAbility().MaxUseTicks
	require.True(t, cm.BeginCharge(actor, weapon, 0))

	cm.Tick(maxUse - 1)
	assert.Equal(t, slash.StateCharging, cm.State(actor.ObjectID()))

	cm.Tick(maxUse)
	assert.Equal(t, slash.StateIdle, cm.State(actor.ObjectID()))
	assert.Zero(t, cm.Charging())
	assert.Zero(t, sweeper.Calls)
	assert.Zero(t, weapon.Damage())

	outcome, _ := cm.Release(actor, maxUse+1, aimForward)
	assert.Equal(t, slash.OutcomeNoSession, outcome)
}

func TestTick_DropsChargeOfDeadActor(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)
	require.True(t, cm.BeginCharge(actor, weapon, 0))

	actor.SetDead(true)
	cm.Tick(5)
	assert.Equal(t, slash.StateIdle, cm.State(actor.ObjectID()))
	assert.Zero(t, cm.Charging())

	outcome, res := cm.Release(actor, 15, aimForward)

	assert.Equal(t, slash.OutcomeNoSession, outcome)
	assert.Empty(t, res.Struck)
	assert.Zero(t, sweeper.Calls)
	assert.Zero(t, weapon.Damage())
	assert.False(t, actor.Cooldowns().IsCoolingDown(weapon.ItemID(), 15))
	assert.Zero(t, actor.Stats().Get(model.UsedStat(weapon.ItemID())))
}

func TestReleaseCharge_DeadActor(t *testing.T) {
	cm, sweeper, actor, weapon := newChargeFixture(t)
	require.True(t, cm.BeginCharge(actor, weapon, 0))
	actor.SetDead(true)

	outcome, _ := cm.ReleaseCharge(actor, weapon, 15, aimForward)

	assert.Equal(t, slash.OutcomeAborted, outcome)
	assert.Zero(t, sweeper.Calls)
	assert.Zero(t, weapon.Damage())
	assert.False(t, actor.Cooldowns().IsCoolingDown(weapon.ItemID(), 15))
	assert.Equal(t, slash.StateIdle, cm.State(actor.ObjectID()))
}

func TestRelease_NilActor(t *testing.T) {
	cm, sweeper, _, _ := newChargeFixture(t)

	assert.NotPanics(t, func() {
		outcome, _ := cm.Release(nil, 15, aimForward)
		assert.Equal(t, slash.OutcomeNoSession, outcome)
	})
	assert.Zero(t, sweeper.Calls)
}

// A five-tick hold against a live engine: nothing moves, nothing breaks.
func TestChargeAndSweep_FiveTickHold(t *testing.T) {
	w := world.NewWorld()
	emitter := testutil.NewRecordingEmitter()
	engine := slash.NewEngine(config.DefaultAbility(), testutil.FlatFloor(t, 32), w, emitter)
	cm := slash.NewChargeManager(config.DefaultAbility(), engine)
	actor := testutil.NewActor(t, w, 1, model.Vec3{})
	weapon := testutil.NewKatana(t, 100)
	mob := testutil.SpawnMob(t, w, 10, model.Vec3{X: 5}, true)

	require.True(t, cm.BeginCharge(actor, weapon, 0))
	outcome, res := cm.Release(actor, 5, slash.AimOf(actor))

	assert.Equal(t, slash.OutcomeAborted, outcome)
	assert.Zero(t, res.Samples)
	assert.Empty(t, emitter.Sounds)
	assert.Empty(t, emitter.Particles)
	assert.Equal(t, model.Vec3{}, actor.Position())
	assert.InDelta(t, testutil.Fixtures.MobHP, mob.CurrentHP(), 1e-9)
	assert.Zero(t, weapon.Damage())
}

func TestChargeAndSweep_FullRelease(t *testing.T) {
	w := world.NewWorld()
	emitter := testutil.NewRecordingEmitter()
	engine := slash.NewEngine(config.DefaultAbility(), testutil.FlatFloor(t, 32), w, emitter)
	cm := slash.NewChargeManager(config.DefaultAbility(), engine)
	actor := testutil.NewActor(t, w, 1, model.Vec3{})
	weapon := testutil.NewKatana(t, 100)
	mob := testutil.SpawnMob(t, w, 10, model.Vec3{X: 5}, true)

	require.True(t, cm.BeginCharge(actor, weapon, 0))
	outcome, res := cm.Release(actor, 20, slash.AimOf(actor))

	require.Equal(t, slash.OutcomeSwept, outcome)
	assert.Equal(t, []uint32{10}, res.Struck)
	assert.InDelta(t, testutil.Fixtures.MobHP-4, mob.CurrentHP(), 1e-9)
	assert.Equal(t, model.Vec3{X: 16}, actor.Position())
	assert.Equal(t, int32(1), weapon.Damage())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", slash.StateIdle.String())
	assert.Equal(t, "charging", slash.StateCharging.String())
	assert.Equal(t, "swept", slash.OutcomeSwept.String())
	assert.Equal(t, "no_session", slash.OutcomeNoSession.String())
}
