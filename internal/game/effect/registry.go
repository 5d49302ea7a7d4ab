package effect

import (
	"fmt"

	"github.com/udisondev/katana/internal/model"
)

// effectRegistry maps effect name → factory function.
var effectRegistry = map[string]func(params map[string]string) Effect{}

// RegisterEffect registers an effect factory by name.
func RegisterEffect(name string, factory func(params map[string]string) Effect) {
	effectRegistry[name] = factory
}

// CreateEffect creates an effect by name using the registered factory.
func CreateEffect(name string, params map[string]string) (Effect, error) {
	factory, ok := effectRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown effect type: %s", name)
	}
	return factory(params), nil
}

func init() {
	RegisterEffect("Burning", NewBurningEffect)
	RegisterEffect("Poison", NewPoisonEffect)
	RegisterEffect("Frostbite", NewFrostbiteEffect)
}

// Managers owns one Manager per affected mob, created on demand.
type Managers struct {
	byMob map[uint32]*Manager
}

// NewManagers creates an empty manager table.
func NewManagers() *Managers {
	return &Managers{byMob: make(map[uint32]*Manager)}
}

// Get returns the Manager for objectID, creating it if needed.
func (ms *Managers) Get(objectID uint32) *Manager {
	m, ok := ms.byMob[objectID]
	if !ok {
		m = NewManager()
		ms.byMob[objectID] = m
	}
	return m
}

// Lookup returns the Manager for objectID without creating one.
func (ms *Managers) Lookup(objectID uint32) (*Manager, bool) {
	m, ok := ms.byMob[objectID]
	return m, ok
}

// TickAll advances every manager by one tick. resolve maps an objectID to its
// mob; managers whose mob is gone (nil) or left with no debuffs are dropped.
func (ms *Managers) TickAll(resolve func(objectID uint32) *model.Mob) {
	for id, m := range ms.byMob {
		mob := resolve(id)
		if mob == nil {
			delete(ms.byMob, id)
			continue
		}
		m.Tick(mob)
		if m.DebuffCount() == 0 {
			delete(ms.byMob, id)
		}
	}
}

// Len returns the number of tracked managers.
func (ms *Managers) Len() int {
	return len(ms.byMob)
}
