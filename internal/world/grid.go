package world

import "math"

const (
	// ShiftBy - shift by N bits for 2^N blocks per region side (2^4 = 16).
	ShiftBy = 4

	// RegionSize in blocks.
	RegionSize = 1 << ShiftBy
)

// RegionKey identifies a region column (regions span all heights).
type RegionKey struct {
	RX int32
	RZ int32
}

// CoordToRegionKey converts a world position to its region key.
// Formula: floor(coord) >> ShiftBy (arithmetic shift floors negatives too).
func CoordToRegionKey(x, z float64) RegionKey {
	return RegionKey{
		RX: int32(math.Floor(x)) >> ShiftBy,
		RZ: int32(math.Floor(z)) >> ShiftBy,
	}
}
