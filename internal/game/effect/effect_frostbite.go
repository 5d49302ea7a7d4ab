package effect

import (
	"strconv"

	"github.com/udisondev/katana/internal/model"
)

// FrostbiteEffect makes the target take more damage from strikes while active.
// Params: "amplifier" (int, 1-based); each level adds 15% damage taken.
type FrostbiteEffect struct {
	amplifier int
}

func NewFrostbiteEffect(params map[string]string) Effect {
	amp, err := strconv.Atoi(params["amplifier"])
	if err != nil || amp < 1 {
		amp = 1
	}
	return &FrostbiteEffect{amplifier: amp}
}

func (e *FrostbiteEffect) Name() string                   { return "Frostbite" }
func (e *FrostbiteEffect) OnStart(_ *model.Mob)           {}
func (e *FrostbiteEffect) OnActionTime(_ *model.Mob) bool { return true }
func (e *FrostbiteEffect) OnExit(_ *model.Mob)            {}

// StatModifiers implements StatModifierProvider.
func (e *FrostbiteEffect) StatModifiers() []StatModifier {
	return []StatModifier{{
		Stat:   StatDamageTaken,
		Factor: 1 + 0.15*float64(e.amplifier),
	}}
}
