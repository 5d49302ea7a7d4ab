package effect

import "github.com/udisondev/katana/internal/model"

// Effect is a status effect applied to a mob.
// OnActionTime runs every period while the effect is active and returns
// false to end it early (e.g. the target died).
type Effect interface {
	Name() string
	OnStart(target *model.Mob)
	OnActionTime(target *model.Mob) bool
	OnExit(target *model.Mob)
}

// ActiveEffect tracks a running effect on a mob.
type ActiveEffect struct {
	SourceID       uint32 // objectID of the actor that applied it
	Effect         Effect
	RemainingTicks int32
	PeriodTicks    int32 // OnActionTime cadence; 0 = never
	AbnormalType   string
	AbnormalLevel  int32

	elapsed int32
}

// IsExpired returns true if the effect duration has elapsed.
func (ae *ActiveEffect) IsExpired() bool {
	return ae.RemainingTicks <= 0
}

// Tick advances the effect by one simulation tick.
// Returns true if the effect is still active.
func (ae *ActiveEffect) Tick(target *model.Mob) bool {
	ae.RemainingTicks--
	ae.elapsed++

	if ae.PeriodTicks > 0 && ae.elapsed%ae.PeriodTicks == 0 {
		if !ae.Effect.OnActionTime(target) {
			return false
		}
	}
	return ae.RemainingTicks > 0
}
