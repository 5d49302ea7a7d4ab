package geo

import (
	"math"

	"github.com/udisondev/katana/internal/model"
)

// VoxelIterator walks every block a segment passes through, in order
// (Amanatides–Woo traversal). Unlike a Bresenham walk it never skips a block
// the segment clips, which a block ray cast needs.
type VoxelIterator struct {
	from  model.Vec3
	delta model.Vec3 // to - from

	cur    [3]int32
	step   [3]int32
	tMax   [3]float64 // segment parameter of the next boundary crossing per axis
	tDelta [3]float64 // parameter advance per whole block per axis

	tEntry  float64
	face    Face
	started bool
	done    bool
}

// NewVoxelIterator creates an iterator over blocks from `from` to `to`.
func NewVoxelIterator(from, to model.Vec3) *VoxelIterator {
	it := &VoxelIterator{from: from, delta: to.Sub(from)}

	start := from.BlockPos()
	it.cur = [3]int32{start.X, start.Y, start.Z}

	origin := [3]float64{from.X, from.Y, from.Z}
	d := [3]float64{it.delta.X, it.delta.Y, it.delta.Z}

	for axis := range 3 {
		switch {
		case d[axis] > 0:
			it.step[axis] = 1
			it.tDelta[axis] = 1 / d[axis]
			boundary := float64(it.cur[axis]) + 1
			it.tMax[axis] = (boundary - origin[axis]) / d[axis]
		case d[axis] < 0:
			it.step[axis] = -1
			it.tDelta[axis] = -1 / d[axis]
			boundary := float64(it.cur[axis])
			it.tMax[axis] = (boundary - origin[axis]) / d[axis]
		default:
			it.tDelta[axis] = math.Inf(1)
			it.tMax[axis] = math.Inf(1)
		}
	}

	return it
}

// Next advances to the next block. The first call yields the start block.
// Returns false once the segment end has been passed.
func (it *VoxelIterator) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}

	axis := 0
	if it.tMax[1] < it.tMax[axis] {
		axis = 1
	}
	if it.tMax[2] < it.tMax[axis] {
		axis = 2
	}

	if it.tMax[axis] > 1 {
		it.done = true
		return false
	}

	it.cur[axis] += it.step[axis]
	it.tEntry = it.tMax[axis]
	it.tMax[axis] += it.tDelta[axis]
	it.face = entryFace(axis, it.step[axis])
	return true
}

// Block returns the current block position.
func (it *VoxelIterator) Block() model.BlockPos {
	return model.BlockPos{X: it.cur[0], Y: it.cur[1], Z: it.cur[2]}
}

// Face returns the face the segment entered the current block through.
func (it *VoxelIterator) Face() Face {
	return it.face
}

// EntryPoint returns where the segment entered the current block.
func (it *VoxelIterator) EntryPoint() model.Vec3 {
	return it.from.Add(it.delta.Scale(it.tEntry))
}

// entryFace maps a crossing on axis in direction step to the entered face.
// Moving +X enters a block through its west (-X) side.
func entryFace(axis int, step int32) Face {
	switch axis {
	case 0:
		if step > 0 {
			return FaceWest
		}
		return FaceEast
	case 1:
		if step > 0 {
			return FaceDown
		}
		return FaceUp
	default:
		if step > 0 {
			return FaceNorth
		}
		return FaceSouth
	}
}
