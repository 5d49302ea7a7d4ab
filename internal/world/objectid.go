package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for all world entities.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid)
//	0x10000000 - 0x1FFFFFFF: Actors
//	0x20000000 - 0x2FFFFFFF: Mobs
//	0x30000000 - 0x3FFFFFFF: Weapon instances
type ObjectIDGenerator struct {
	nextActorID  atomic.Uint32
	nextMobID    atomic.Uint32
	nextWeaponID atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextActorID.Store(0x10000000)
	gen.nextMobID.Store(0x20000000)
	gen.nextWeaponID.Store(0x30000000)
	return gen
}

// NextActorID generates next unique actor object ID.
func (g *ObjectIDGenerator) NextActorID() uint32 {
	return g.nextActorID.Add(1)
}

// NextMobID generates next unique mob object ID.
func (g *ObjectIDGenerator) NextMobID() uint32 {
	return g.nextMobID.Add(1)
}

// NextWeaponID generates next unique weapon object ID.
func (g *ObjectIDGenerator) NextWeaponID() uint32 {
	return g.nextWeaponID.Add(1)
}
