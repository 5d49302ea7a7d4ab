package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/katana/internal/model"
)

func collectBlocks(from, to model.Vec3) []model.BlockPos {
	var blocks []model.BlockPos
	it := NewVoxelIterator(from, to)
	for it.Next() {
		blocks = append(blocks, it.Block())
	}
	return blocks
}

func TestVoxelIteratorAlongX(t *testing.T) {
	blocks := collectBlocks(model.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, model.Vec3{X: 5.5, Y: 0.5, Z: 0.5})

	assert.Equal(t, 6, len(blocks), "should visit blocks 0..5")
	for i, b := range blocks {
		assert.Equal(t, model.BlockPos{X: int32(i)}, b)
	}
}

func TestVoxelIteratorNegativeDirection(t *testing.T) {
	blocks := collectBlocks(model.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, model.Vec3{X: 0.5, Y: 0.5, Z: -2.5})

	assert.Equal(t, []model.BlockPos{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -1},
		{X: 0, Y: 0, Z: -2},
		{X: 0, Y: 0, Z: -3},
	}, blocks)
}

func TestVoxelIteratorDiagonalVisitsEveryClippedBlock(t *testing.T) {
	blocks := collectBlocks(model.Vec3{X: 0.2, Y: 0.5, Z: 0.7}, model.Vec3{X: 2.8, Y: 0.5, Z: 2.3})

	// Each step changes exactly one axis by one.
	for i := 1; i < len(blocks); i++ {
		dx := blocks[i].X - blocks[i-1].X
		dz := blocks[i].Z - blocks[i-1].Z
		assert.Equal(t, int32(1), dx+dz, "step %d must move one block along one axis", i)
	}
	assert.Equal(t, model.BlockPos{X: 2, Y: 0, Z: 2}, blocks[len(blocks)-1])
}

func TestVoxelIteratorZeroLength(t *testing.T) {
	blocks := collectBlocks(model.Vec3{X: 3.5, Y: 1, Z: 3.5}, model.Vec3{X: 3.5, Y: 1, Z: 3.5})
	assert.Equal(t, []model.BlockPos{{X: 3, Y: 1, Z: 3}}, blocks)
}

func TestVoxelIteratorEntryFace(t *testing.T) {
	it := NewVoxelIterator(model.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, model.Vec3{X: 3.5, Y: 0.5, Z: 0.5})
	assert.True(t, it.Next())
	assert.Equal(t, FaceNone, it.Face())

	assert.True(t, it.Next())
	assert.Equal(t, FaceWest, it.Face())
	assert.InDelta(t, 1.0, it.EntryPoint().X, 1e-9)
}
