package effect

import (
	"log/slog"

	"github.com/udisondev/katana/internal/model"
)

const maxDebuffs = 8

// Manager tracks active debuffs on one mob.
//
// Stacking rules (same AbnormalType):
//   - Higher AbnormalLevel → replaces existing
//   - Same AbnormalLevel → refreshes duration
//   - Lower AbnormalLevel → rejected
//
// If the debuff limit is reached, the oldest debuff is removed.
type Manager struct {
	debuffs   []*ActiveEffect
	modifiers []StatModifier
}

// NewManager creates a new empty Manager.
func NewManager() *Manager {
	return &Manager{
		debuffs:   make([]*ActiveEffect, 0, maxDebuffs),
		modifiers: make([]StatModifier, 0, 4),
	}
}

// AddDebuff adds a debuff to target. Returns true if it was added or refreshed.
func (m *Manager) AddDebuff(target *model.Mob, ae *ActiveEffect) bool {
	if ae.AbnormalType != "" {
		for i, existing := range m.debuffs {
			if existing.AbnormalType != ae.AbnormalType {
				continue
			}
			if ae.AbnormalLevel > existing.AbnormalLevel {
				existing.Effect.OnExit(target)
				m.debuffs[i] = ae
				ae.Effect.OnStart(target)
				m.rebuildModifiers(target)
				return true
			}
			if ae.AbnormalLevel == existing.AbnormalLevel {
				existing.RemainingTicks = max(existing.RemainingTicks, ae.RemainingTicks)
				return true
			}
			return false
		}
	}

	if len(m.debuffs) >= maxDebuffs {
		oldest := m.debuffs[0]
		oldest.Effect.OnExit(target)
		m.debuffs = m.debuffs[1:]

		slog.Debug("debuff limit reached, removed oldest",
			"removed", oldest.Effect.Name(),
			"target", target.ObjectID())
	}

	m.debuffs = append(m.debuffs, ae)
	ae.Effect.OnStart(target)
	m.rebuildModifiers(target)
	return true
}

// Tick advances all debuffs by one tick, removing expired ones.
func (m *Manager) Tick(target *model.Mob) {
	changed := false
	n := 0
	for _, ae := range m.debuffs {
		if !ae.Tick(target) {
			ae.Effect.OnExit(target)
			changed = true
			continue
		}
		m.debuffs[n] = ae
		n++
	}
	m.debuffs = m.debuffs[:n]

	if changed {
		m.rebuildModifiers(target)
	}
}

// Multiplier returns the product of all active modifiers on stat
// (1 when none apply).
func (m *Manager) Multiplier(stat string) float64 {
	result := 1.0
	for _, mod := range m.modifiers {
		if mod.Stat == stat {
			result *= mod.Factor
		}
	}
	return result
}

// ActiveDebuffs returns a copy of active debuffs.
func (m *Manager) ActiveDebuffs() []*ActiveEffect {
	result := make([]*ActiveEffect, len(m.debuffs))
	copy(result, m.debuffs)
	return result
}

// DebuffCount returns current number of active debuffs.
func (m *Manager) DebuffCount() int {
	return len(m.debuffs)
}

// Has reports whether a debuff with abnormalType is active.
func (m *Manager) Has(abnormalType string) bool {
	for _, ae := range m.debuffs {
		if ae.AbnormalType == abnormalType {
			return true
		}
	}
	return false
}

// rebuildModifiers recollects stat modifiers and pushes the result to target.
func (m *Manager) rebuildModifiers(target *model.Mob) {
	m.modifiers = m.modifiers[:0]
	for _, ae := range m.debuffs {
		if provider, ok := ae.Effect.(StatModifierProvider); ok {
			m.modifiers = append(m.modifiers, provider.StatModifiers()...)
		}
	}
	target.SetDamageTakenMultiplier(m.Multiplier(StatDamageTaken))
}
