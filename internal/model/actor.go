package model

// Actor — сущность, выполняющая заряжаемую способность (игрок).
type Actor struct {
	*WorldObject

	eyeHeight float64
	look      Vec3 // unit aim vector
	dead      bool

	cooldowns *Cooldowns
	stats     *Stats

	// moveListener is installed by world.World so teleports keep the index fresh.
	moveListener func(obj *WorldObject, from Vec3)
}

// DefaultEyeHeight is the eye offset above the feet of a standing actor.
const DefaultEyeHeight = 1.62

// NewActor создаёт актёра в позиции pos, смотрящего вдоль +X.
func NewActor(objectID uint32, name string, pos Vec3) *Actor {
	a := &Actor{
		WorldObject: NewWorldObject(objectID, name, pos),
		eyeHeight:   DefaultEyeHeight,
		look:        Vec3{X: 1},
		cooldowns:   NewCooldowns(),
		stats:       NewStats(),
	}
	a.WorldObject.Data = a
	return a
}

// EyeHeight returns the eye offset above the feet.
func (a *Actor) EyeHeight() float64 {
	return a.eyeHeight
}

// SetEyeHeight overrides the eye offset (sneaking, swimming).
func (a *Actor) SetEyeHeight(h float64) {
	a.eyeHeight = h
}

// EyePosition возвращает позицию камеры актёра.
func (a *Actor) EyePosition() Vec3 {
	return a.Position().Offset(0, a.eyeHeight, 0)
}

// Look returns the current aim direction.
func (a *Actor) Look() Vec3 {
	return a.look
}

// SetLook sets the aim direction; it is normalized on write.
func (a *Actor) SetLook(dir Vec3) {
	a.look = dir.Normalize()
}

// IsDead reports whether the actor is incapacitated.
func (a *Actor) IsDead() bool {
	return a.dead
}

// SetDead marks the actor incapacitated or revived.
func (a *Actor) SetDead(dead bool) {
	a.dead = dead
}

// Cooldowns returns the per-item cooldown table.
func (a *Actor) Cooldowns() *Cooldowns {
	return a.cooldowns
}

// Stats returns the usage counters.
func (a *Actor) Stats() *Stats {
	return a.stats
}

// SetMoveListener installs the callback fired after every Teleport.
func (a *Actor) SetMoveListener(fn func(obj *WorldObject, from Vec3)) {
	a.moveListener = fn
}

// Teleport мгновенно перемещает актёра в pos.
func (a *Actor) Teleport(pos Vec3) {
	from := a.Position()
	a.SetPosition(pos)
	if a.moveListener != nil {
		a.moveListener(a.WorldObject, from)
	}
}
