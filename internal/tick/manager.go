package tick

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/udisondev/katana/internal/game/effect"
	"github.com/udisondev/katana/internal/game/slash"
	"github.com/udisondev/katana/internal/model"
	"github.com/udisondev/katana/internal/scenario"
)

// Summary is what a finished run did.
type Summary struct {
	Ticks     int64
	Charges   int // successful BeginCharge calls
	Slashes   int // releases that swept
	Aborted   int // releases that did nothing
	Cancelled int
	Struck    int // targets damaged across all slashes
	Killed    int // mobs that died and were removed from the world
}

// Manager drives one scenario: each tick it plays the scripted actions,
// expires stale charges, advances status effects and removes dead mobs.
// Everything runs on the Start goroutine.
type Manager struct {
	sc       *scenario.Scenario
	charges  *slash.ChargeManager
	effects  *effect.Managers
	rate     int   // ticks per second; 0 = free-running
	maxTicks int64 // hard stop

	now     int64
	summary Summary
	stopCh  chan struct{}
}

// NewManager creates a tick manager for sc.
func NewManager(sc *scenario.Scenario, charges *slash.ChargeManager, effects *effect.Managers, rate int, maxTicks int64) *Manager {
	return &Manager{
		sc:       sc,
		charges:  charges,
		effects:  effects,
		rate:     rate,
		maxTicks: maxTicks,
		stopCh:   make(chan struct{}),
	}
}

// Start runs ticks until the scenario settles, maxTicks is reached, Stop is
// called, or ctx is cancelled. Blocks. Cancellation is a normal shutdown and
// returns nil; the summary holds whatever ran up to that point.
func (m *Manager) Start(ctx context.Context) error {
	var tickC <-chan time.Time
	if m.rate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(m.rate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	slog.Info("tick manager started",
		"scenario", m.sc.Name,
		"rate", m.rate,
		"maxTicks", m.maxTicks)

	for {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return m.interrupted(ctx)
			case <-m.stopCh:
				slog.Info("tick manager stopped", "tick", m.now)
				return nil
			case <-tickC:
			}
		} else {
			select {
			case <-ctx.Done():
				return m.interrupted(ctx)
			case <-m.stopCh:
				slog.Info("tick manager stopped", "tick", m.now)
				return nil
			default:
			}
		}

		m.Step()

		if m.now >= m.maxTicks || m.settled() {
			slog.Info("tick manager finished", "tick", m.now)
			return nil
		}
	}
}

// interrupted ends a run whose context is done. Cancellation is clean; a
// deadline is reported to the caller.
func (m *Manager) interrupted(ctx context.Context) error {
	slog.Info("tick manager stopping", "tick", m.now, "reason", context.Cause(ctx))
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}

// Stop stops the tick loop.
func (m *Manager) Stop() {
	close(m.stopCh)
}

// Step runs a single tick and advances the clock.
func (m *Manager) Step() {
	for _, a := range m.sc.ActionsAt(m.now) {
		m.apply(a)
	}
	m.charges.Tick(m.now)
	m.effects.TickAll(func(objectID uint32) *model.Mob {
		mob, ok := m.sc.World.GetMob(objectID)
		if !ok {
			return nil
		}
		return mob
	})
	m.reap()
	m.now++
	m.summary.Ticks = m.now
}

// Now returns the tick the next Step will run.
func (m *Manager) Now() int64 {
	return m.now
}

// Summary returns the run's counters so far.
func (m *Manager) Summary() Summary {
	return m.summary
}

func (m *Manager) apply(a scenario.Action) {
	actor := m.sc.Actor

	switch a.Kind {
	case scenario.ActionBegin:
		if m.charges.BeginCharge(actor, m.sc.Weapon, m.now) {
			m.summary.Charges++
		}
	case scenario.ActionRelease:
		outcome, res := m.charges.Release(actor, m.now, slash.AimOf(actor))
		switch outcome {
		case slash.OutcomeSwept:
			m.summary.Slashes++
			m.summary.Struck += len(res.Struck)
		case slash.OutcomeAborted:
			m.summary.Aborted++
		}
	case scenario.ActionCancel:
		if m.charges.Cancel(actor) {
			m.summary.Cancelled++
		}
	case scenario.ActionLook:
		actor.SetLook(a.Direction)
	}

	slog.Debug("action", "tick", m.now, "kind", a.Kind, "state", m.charges.State(actor.ObjectID()))
}

// settled reports whether nothing is left to happen: the script is done,
// nobody is charging and no status effect is running.
func (m *Manager) settled() bool {
	return m.now > m.sc.LastTick() && m.charges.Charging() == 0 && m.effects.Len() == 0
}

// reap removes mobs that died this tick from the world. Their effect managers
// are dropped on the next TickAll.
func (m *Manager) reap() {
	var dead []*model.Mob
	m.sc.World.ForEachMob(func(mob *model.Mob) bool {
		if mob.IsDead() {
			dead = append(dead, mob)
		}
		return true
	})
	for _, mob := range dead {
		m.sc.World.RemoveMob(mob.ObjectID())
		m.summary.Killed++
		slog.Info("mob killed",
			"tick", m.now,
			"mob", mob.Name(),
			"lastAttacker", mob.LastAttacker())
	}
}
