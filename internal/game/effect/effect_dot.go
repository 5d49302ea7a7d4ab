package effect

import (
	"log/slog"
	"strconv"

	"github.com/udisondev/katana/internal/model"
)

// DamageOverTimeEffect deals periodic damage.
// Params: "power" (float64 per period), "canKill" (bool, default false).
// If canKill is false, damage cannot reduce HP below 1.
type DamageOverTimeEffect struct {
	name    string
	power   float64
	canKill bool
}

// NewBurningEffect creates a fire DOT that can kill.
func NewBurningEffect(params map[string]string) Effect {
	power, _ := strconv.ParseFloat(params["power"], 64)
	return &DamageOverTimeEffect{name: "Burning", power: power, canKill: true}
}

// NewPoisonEffect creates a poison DOT; canKill defaults to false.
func NewPoisonEffect(params map[string]string) Effect {
	power, _ := strconv.ParseFloat(params["power"], 64)
	canKill, _ := strconv.ParseBool(params["canKill"])
	return &DamageOverTimeEffect{name: "Poison", power: power, canKill: canKill}
}

func (e *DamageOverTimeEffect) Name() string { return e.name }

func (e *DamageOverTimeEffect) OnStart(target *model.Mob) {
	slog.Debug("dot started", "effect", e.name, "power", e.power, "target", target.ObjectID())
}

func (e *DamageOverTimeEffect) OnActionTime(target *model.Mob) bool {
	if target.IsDead() {
		return false
	}

	damage := e.power
	if damage <= 0 {
		return true
	}

	if !e.canKill && damage >= target.CurrentHP() {
		damage = target.CurrentHP() - 1
		if damage <= 0 {
			return true
		}
	}

	target.ReduceHP(damage)
	slog.Debug("dot tick", "effect", e.name, "damage", damage, "target", target.ObjectID())
	return true
}

func (e *DamageOverTimeEffect) OnExit(target *model.Mob) {
	slog.Debug("dot ended", "effect", e.name, "target", target.ObjectID())
}
