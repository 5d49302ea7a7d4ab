package world

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/katana/internal/model"
)

// World is the entity index of the simulation: mobs bucketed into 16×16
// regions plus the actors present. Accessed only from the tick goroutine.
type World struct {
	regions map[RegionKey]*Region
	mobs    map[uint32]*model.Mob
	actors  map[uint32]*model.Actor

	// maxReach is the largest hitbox half-width/height seen; a box query must
	// look this far past its own edges to catch mobs whose position lies
	// outside the box but whose hitbox reaches into it.
	maxReach float64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		regions: make(map[RegionKey]*Region),
		mobs:    make(map[uint32]*model.Mob),
		actors:  make(map[uint32]*model.Actor),
	}
}

// region returns the region for key, creating it on demand.
func (w *World) region(key RegionKey) *Region {
	r, ok := w.regions[key]
	if !ok {
		r = NewRegion()
		w.regions[key] = r
	}
	return r
}

// AddMob adds mob to world and its region.
func (w *World) AddMob(m *model.Mob) error {
	if _, exists := w.mobs[m.ObjectID()]; exists {
		return fmt.Errorf("mob %d already in world", m.ObjectID())
	}
	pos := m.Position()
	if !pos.IsFinite() {
		return fmt.Errorf("invalid coordinates for mob %d: %+v", m.ObjectID(), pos)
	}

	w.mobs[m.ObjectID()] = m
	w.region(CoordToRegionKey(pos.X, pos.Z)).AddMob(m)

	b := m.Bounds()
	w.maxReach = max(w.maxReach, (b.Max.X-b.Min.X)/2, b.Max.Y-b.Min.Y)
	return nil
}

// AddActor registers actor and hooks its teleports.
func (w *World) AddActor(a *model.Actor) error {
	if _, exists := w.actors[a.ObjectID()]; exists {
		return fmt.Errorf("actor %d already in world", a.ObjectID())
	}
	w.actors[a.ObjectID()] = a
	a.SetMoveListener(func(obj *model.WorldObject, from model.Vec3) {
		slog.Debug("actor moved",
			"actor", obj.Name(),
			"from", from,
			"to", obj.Position())
	})
	return nil
}

// RemoveMob drops mob objectID from the world and its region.
// Unknown IDs are ignored.
func (w *World) RemoveMob(objectID uint32) {
	m, ok := w.mobs[objectID]
	if !ok {
		return
	}
	delete(w.mobs, objectID)
	pos := m.Position()
	if r, ok := w.regions[CoordToRegionKey(pos.X, pos.Z)]; ok {
		r.RemoveMob(objectID)
	}
}

// GetMob returns mob by ID.
func (w *World) GetMob(objectID uint32) (*model.Mob, bool) {
	m, ok := w.mobs[objectID]
	return m, ok
}

// ForEachMob iterates over all mobs. If fn returns false, iteration stops.
func (w *World) ForEachMob(fn func(*model.Mob) bool) {
	for _, m := range w.mobs {
		if !fn(m) {
			return
		}
	}
}

// HostilesInBox returns living hostile mobs whose hitbox intersects box and
// that satisfy pred (nil pred accepts all). Order is unspecified.
func (w *World) HostilesInBox(box model.Box, pred func(*model.Mob) bool) []*model.Mob {
	lo := CoordToRegionKey(box.Min.X-w.maxReach, box.Min.Z-w.maxReach)
	hi := CoordToRegionKey(box.Max.X+w.maxReach, box.Max.Z+w.maxReach)

	var result []*model.Mob
	for rx := lo.RX; rx <= hi.RX; rx++ {
		for rz := lo.RZ; rz <= hi.RZ; rz++ {
			r, ok := w.regions[RegionKey{RX: rx, RZ: rz}]
			if !ok {
				continue
			}
			for _, m := range r.Snapshot() {
				if !m.IsHostile() || m.IsDead() {
					continue
				}
				if !m.Bounds().Intersects(box) {
					continue
				}
				if pred != nil && !pred(m) {
					continue
				}
				result = append(result, m)
			}
		}
	}
	return result
}

// RegionCount returns number of allocated regions.
func (w *World) RegionCount() int {
	return len(w.regions)
}

// MobCount returns number of mobs in world.
func (w *World) MobCount() int {
	return len(w.mobs)
}

// ActorCount returns number of actors in world.
func (w *World) ActorCount() int {
	return len(w.actors)
}
