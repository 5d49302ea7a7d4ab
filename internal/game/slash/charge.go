package slash

import (
	"log/slog"

	"github.com/udisondev/katana/internal/config"
	"github.com/udisondev/katana/internal/model"
)

// State is an actor's position in the charge cycle.
type State int

const (
	StateIdle State = iota
	StateCharging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCharging:
		return "charging"
	default:
		return "unknown"
	}
}

// ReleaseOutcome reports what a release did.
type ReleaseOutcome int

const (
	// OutcomeNoSession: the actor was not charging.
	OutcomeNoSession ReleaseOutcome = iota
	// OutcomeAborted: the charge was too short or the weapon changed; nothing happened.
	OutcomeAborted
	// OutcomeSwept: the slash was performed.
	OutcomeSwept
)

func (o ReleaseOutcome) String() string {
	switch o {
	case OutcomeNoSession:
		return "no_session"
	case OutcomeAborted:
		return "aborted"
	case OutcomeSwept:
		return "swept"
	default:
		return "unknown"
	}
}

// ChargeSession is an actor's in-progress charge. Never persisted.
type ChargeSession struct {
	ActorID   uint32
	StartTick int64
	Weapon    *model.Weapon
}

// Aim is where the actor looks at the moment of release.
type Aim struct {
	Eye       model.Vec3
	Direction model.Vec3
}

// AimOf captures the actor's current eye position and look direction.
func AimOf(actor *model.Actor) Aim {
	return Aim{Eye: actor.EyePosition(), Direction: actor.Look()}
}

// Sweeper resolves a released slash. *Engine implements it.
type Sweeper interface {
	ResolveSweep(ev ReleaseEvent, actor *model.Actor, weapon *model.Weapon) SweepResult
}

// ChargeManager runs the charge cycle for every actor:
// Idle → Charging → (release | cancel | expiry) → Idle.
type ChargeManager struct {
	cfg      config.Ability
	sweeper  Sweeper
	sessions map[uint32]*ChargeSession
	actors   map[uint32]*model.Actor
}

// NewChargeManager creates a charge manager.
func NewChargeManager(cfg config.Ability, sweeper Sweeper) *ChargeManager {
	return &ChargeManager{
		cfg:      cfg,
		sweeper:  sweeper,
		sessions: make(map[uint32]*ChargeSession),
		actors:   make(map[uint32]*model.Actor),
	}
}

// BeginCharge starts charging weapon. Returns false, with no session
// created, if the weapon is worn out or cooling down, the actor is dead,
// or the actor is already charging.
func (m *ChargeManager) BeginCharge(actor *model.Actor, weapon *model.Weapon, now int64) bool {
	if actor == nil || weapon == nil {
		return false
	}
	if actor.IsDead() {
		return false
	}
	if _, charging := m.sessions[actor.ObjectID()]; charging {
		slog.Debug("charge already in progress", "actor", actor.Name())
		return false
	}
	if weapon.IsExhausted() {
		slog.Debug("weapon worn out",
			"actor", actor.Name(),
			"weapon", weapon.Name(),
			"damage", weapon.Damage(),
			"maxDamage", weapon.MaxDamage())
		return false
	}
	if actor.Cooldowns().IsCoolingDown(weapon.ItemID(), now) {
		slog.Debug("weapon cooling down",
			"actor", actor.Name(),
			"weapon", weapon.Name(),
			"remaining", actor.Cooldowns().Remaining(weapon.ItemID(), now))
		return false
	}

	m.sessions[actor.ObjectID()] = &ChargeSession{
		ActorID:   actor.ObjectID(),
		StartTick: now,
		Weapon:    weapon,
	}
	m.actors[actor.ObjectID()] = actor
	return true
}

// ReleaseCharge ends the actor's charge after ticksHeld ticks. A charge
// shorter than MinChargeTicks, or one whose actor has died, returns to idle
// with no effect. Otherwise the
// weapon takes durability damage, the slash is resolved once, and the weapon
// goes on cooldown.
func (m *ChargeManager) ReleaseCharge(actor *model.Actor, weapon *model.Weapon, ticksHeld int64, aim Aim) (ReleaseOutcome, SweepResult) {
	session, ok := m.take(actor)
	if !ok {
		return OutcomeNoSession, SweepResult{}
	}
	if actor.IsDead() {
		slog.Debug("charge interrupted", "actor", actor.Name(), "started", session.StartTick)
		return OutcomeAborted, SweepResult{}
	}
	if weapon != session.Weapon {
		slog.Warn("release with a different weapon than charged",
			"actor", actor.Name(),
			"charged", session.Weapon.Name(),
			"released", weaponName(weapon))
		return OutcomeAborted, SweepResult{}
	}
	if ticksHeld < m.cfg.MinChargeTicks {
		slog.Debug("charge too short",
			"actor", actor.Name(),
			"ticksHeld", ticksHeld,
			"required", m.cfg.MinChargeTicks)
		return OutcomeAborted, SweepResult{}
	}

	weapon.DamageItem(m.cfg.DurabilityCost, func(w *model.Weapon) {
		slog.Info("weapon broke", "actor", actor.Name(), "weapon", w.Name())
	})

	ev := ReleaseEvent{
		Origin:         aim.Eye,
		Direction:      aim.Direction,
		MaxRange:       m.cfg.MaxRange,
		ChargeDuration: ticksHeld,
	}
	result := m.sweeper.ResolveSweep(ev, actor, weapon)

	actor.Cooldowns().Set(weapon.ItemID(), session.StartTick+ticksHeld, m.cfg.CooldownTicks)
	actor.Stats().Increment(model.UsedStat(weapon.ItemID()))

	slog.Info("slash released",
		"actor", actor.Name(),
		"weapon", weapon.Name(),
		"ticksHeld", ticksHeld,
		"struck", len(result.Struck),
		"destination", result.Destination)

	return OutcomeSwept, result
}

// Release ends the actor's charge at tick now with the session's weapon.
func (m *ChargeManager) Release(actor *model.Actor, now int64, aim Aim) (ReleaseOutcome, SweepResult) {
	if actor == nil {
		return OutcomeNoSession, SweepResult{}
	}
	session, ok := m.sessions[actor.ObjectID()]
	if !ok {
		return OutcomeNoSession, SweepResult{}
	}
	return m.ReleaseCharge(actor, session.Weapon, now-session.StartTick, aim)
}

// Cancel discards the actor's charge. Reports whether one existed.
func (m *ChargeManager) Cancel(actor *model.Actor) bool {
	_, ok := m.take(actor)
	return ok
}

// Tick ends sessions whose actor died or that have been held for
// MaxUseTicks. Both end without a slash.
func (m *ChargeManager) Tick(now int64) {
	for id, session := range m.sessions {
		actor := m.actors[id]
		switch {
		case actor != nil && actor.IsDead():
			slog.Debug("charge interrupted", "actor", actor.Name(), "started", session.StartTick)
		case now-session.StartTick >= m.cfg.MaxUseTicks:
			if actor != nil {
				slog.Debug("charge expired", "actor", actor.Name(), "started", session.StartTick)
			}
		default:
			continue
		}
		delete(m.sessions, id)
		delete(m.actors, id)
	}
}

// State returns the actor's charge state.
func (m *ChargeManager) State(actorID uint32) State {
	if _, ok := m.sessions[actorID]; ok {
		return StateCharging
	}
	return StateIdle
}

// Session returns the actor's session, or nil.
func (m *ChargeManager) Session(actorID uint32) *ChargeSession {
	return m.sessions[actorID]
}

// Charging returns the number of actors charging.
func (m *ChargeManager) Charging() int {
	return len(m.sessions)
}

func (m *ChargeManager) take(actor *model.Actor) (*ChargeSession, bool) {
	if actor == nil {
		return nil, false
	}
	session, ok := m.sessions[actor.ObjectID()]
	if !ok {
		return nil, false
	}
	delete(m.sessions, actor.ObjectID())
	delete(m.actors, actor.ObjectID())
	return session, true
}

func weaponName(w *model.Weapon) string {
	if w == nil {
		return ""
	}
	return w.Name()
}
