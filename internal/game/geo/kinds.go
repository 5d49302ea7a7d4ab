package geo

// BlockKind classifies a block for ray casts and support checks.
type BlockKind uint8

const (
	BlockAir   BlockKind = iota // empty; also returned for unset cells
	BlockSolid                  // full opaque cube
	BlockFluid                  // water/lava; blocks rays only with FluidAny
)

// String returns a human-readable block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockAir:
		return "air"
	case BlockSolid:
		return "solid"
	case BlockFluid:
		return "fluid"
	default:
		return "unknown"
	}
}

// ParseBlockKind parses a block kind name (as written in scenario files).
func ParseBlockKind(s string) (BlockKind, bool) {
	switch s {
	case "air":
		return BlockAir, true
	case "solid", "stone":
		return BlockSolid, true
	case "fluid", "water":
		return BlockFluid, true
	default:
		return BlockAir, false
	}
}

// FluidMode selects whether fluids stop a ray.
type FluidMode uint8

const (
	FluidNone FluidMode = iota // fluids are transparent
	FluidAny                   // fluids stop the ray like solids
)

// Face is the side of a block a ray entered through.
type Face uint8

const (
	FaceNone Face = iota // ray started inside the block
	FaceWest             // -X side
	FaceEast             // +X side
	FaceDown             // -Y side
	FaceUp               // +Y side
	FaceNorth            // -Z side
	FaceSouth            // +Z side
)

// String returns the face name.
func (f Face) String() string {
	switch f {
	case FaceWest:
		return "west"
	case FaceEast:
		return "east"
	case FaceDown:
		return "down"
	case FaceUp:
		return "up"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	default:
		return "none"
	}
}
