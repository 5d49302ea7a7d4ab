package model

// Box is an axis-aligned bounding box [Min, Max].
type Box struct {
	Min Vec3
	Max Vec3
}

// NewBox creates a box from two corners in any order.
func NewBox(a, b Vec3) Box {
	return Box{
		Min: Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// BoxAround returns a cube of the given half-extent centered at c.
func BoxAround(c Vec3, halfExtent float64) Box {
	return Box{
		Min: c.Offset(-halfExtent, -halfExtent, -halfExtent),
		Max: c.Offset(halfExtent, halfExtent, halfExtent),
	}
}

// Intersects reports whether the two boxes overlap with non-zero volume.
// Touching faces do not count as an intersection.
func (b Box) Intersects(o Box) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}
