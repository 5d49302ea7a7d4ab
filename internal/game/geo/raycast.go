package geo

import "github.com/udisondev/katana/internal/model"

// HitType tells whether a ray cast stopped on a block.
type HitType uint8

const (
	HitMiss  HitType = iota // reached the segment end unobstructed
	HitBlock                // stopped on a block face
)

// HitResult is the outcome of a ray cast.
// Pos is the terminal point: the entry point on the hit face, or the segment end.
type HitResult struct {
	Type  HitType
	Pos   model.Vec3
	Block model.BlockPos // valid only for HitBlock
	Face  Face           // valid only for HitBlock
}

// Raycast traces the segment from → to and returns the first block that stops it.
// A ray that starts inside a stopping block hits at `from`.
// Non-finite input never faults: it is reported as a miss at `to`.
func (g *Grid) Raycast(from, to model.Vec3, fluids FluidMode) HitResult {
	miss := HitResult{Type: HitMiss, Pos: to}
	if !from.IsFinite() || !to.IsFinite() {
		return miss
	}

	it := NewVoxelIterator(from, to)
	for it.Next() {
		pos := it.Block()
		if g.stopsRay(pos, fluids) {
			return HitResult{
				Type:  HitBlock,
				Pos:   it.EntryPoint(),
				Block: pos,
				Face:  it.Face(),
			}
		}
	}

	return miss
}
