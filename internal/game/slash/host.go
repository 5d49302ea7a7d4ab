package slash

import (
	"github.com/udisondev/katana/internal/game/geo"
	"github.com/udisondev/katana/internal/model"
)

// Terrain is the block world a slash travels through.
// *geo.Grid implements it.
type Terrain interface {
	Raycast(from, to model.Vec3, fluids geo.FluidMode) geo.HitResult
	IsAir(pos model.BlockPos) bool
}

// TargetQuery finds hostile mobs whose hitbox intersects a box.
// *world.World implements it. Result order is unspecified.
type TargetQuery interface {
	HostilesInBox(box model.Box, pred func(*model.Mob) bool) []*model.Mob
}
