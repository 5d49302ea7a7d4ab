package world

import "github.com/udisondev/katana/internal/model"

// Region represents one 16×16 block column of the world.
// Mobs are indexed by the region that contains their position.
type Region struct {
	mobs map[uint32]*model.Mob // objectID → mob

	// Snapshot cache (immutable slice), rebuilt lazily after Add/Remove.
	snapshot      []*model.Mob
	snapshotDirty bool
}

// NewRegion creates a new empty region.
func NewRegion() *Region {
	return &Region{
		mobs: make(map[uint32]*model.Mob),
	}
}

// AddMob adds mob to the region and invalidates the snapshot.
func (r *Region) AddMob(m *model.Mob) {
	r.mobs[m.ObjectID()] = m
	r.snapshotDirty = true
}

// RemoveMob removes mob by objectID and invalidates the snapshot.
func (r *Region) RemoveMob(objectID uint32) {
	if _, ok := r.mobs[objectID]; !ok {
		return
	}
	delete(r.mobs, objectID)
	r.snapshotDirty = true
}

// Snapshot returns cached slice of mobs in this region.
// The returned slice is shared; callers must not modify it.
func (r *Region) Snapshot() []*model.Mob {
	if !r.snapshotDirty && r.snapshot != nil {
		return r.snapshot
	}

	mobs := make([]*model.Mob, 0, len(r.mobs))
	for _, m := range r.mobs {
		mobs = append(mobs, m)
	}
	r.snapshot = mobs
	r.snapshotDirty = false
	return mobs
}
