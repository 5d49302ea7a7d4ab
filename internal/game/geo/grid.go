package geo

import (
	"log/slog"

	"github.com/udisondev/katana/internal/model"
)

// Grid is an in-memory voxel world: a sparse map of non-air blocks.
// It is mutated only from the simulation tick goroutine.
type Grid struct {
	blocks map[model.BlockPos]BlockKind
}

// NewGrid creates an empty grid (every block is air).
func NewGrid() *Grid {
	return &Grid{blocks: make(map[model.BlockPos]BlockKind)}
}

// SetBlock sets the block kind at pos. Setting air removes the entry.
func (g *Grid) SetBlock(pos model.BlockPos, kind BlockKind) {
	if kind == BlockAir {
		delete(g.blocks, pos)
		return
	}
	g.blocks[pos] = kind
}

// Fill sets every block in the inclusive cuboid [a, b] to kind.
// Returns the number of blocks written.
func (g *Grid) Fill(a, b model.BlockPos, kind BlockKind) int {
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)
	minZ, maxZ := min(a.Z, b.Z), max(a.Z, b.Z)

	n := 0
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				g.SetBlock(model.BlockPos{X: x, Y: y, Z: z}, kind)
				n++
			}
		}
	}

	slog.Debug("grid fill", "from", a, "to", b, "kind", kind, "blocks", n)
	return n
}

// Block returns the kind at pos (air if unset).
func (g *Grid) Block(pos model.BlockPos) BlockKind {
	return g.blocks[pos]
}

// IsAir reports whether pos holds no block at all.
// Fluids are not air.
func (g *Grid) IsAir(pos model.BlockPos) bool {
	return g.Block(pos) == BlockAir
}

// BlockCount returns the number of non-air blocks.
func (g *Grid) BlockCount() int {
	return len(g.blocks)
}

// stopsRay reports whether a block at pos ends a ray under the fluid mode.
func (g *Grid) stopsRay(pos model.BlockPos, fluids FluidMode) bool {
	switch g.Block(pos) {
	case BlockSolid:
		return true
	case BlockFluid:
		return fluids == FluidAny
	default:
		return false
	}
}
