package model

import (
	"math"
	"testing"
)

func TestVec3_Length(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{name: "zero", v: Vec3{}, want: 0},
		{name: "unit x", v: Vec3{X: 1}, want: 1},
		{name: "3-4-0", v: Vec3{X: 3, Y: 4}, want: 5},
		{name: "negative", v: Vec3{X: -2, Y: -3, Z: -6}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	got := Vec3{X: 0, Y: 0, Z: 10}.Normalize()
	if got != (Vec3{Z: 1}) {
		t.Errorf("Normalize() = %+v, want {0 0 1}", got)
	}

	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("Normalize(zero) = %+v, want zero vector", zero)
	}

	if nan := (Vec3{X: math.NaN()}).Normalize(); nan != (Vec3{}) {
		t.Errorf("Normalize(NaN) = %+v, want zero vector", nan)
	}
}

func TestVec3_BlockPos(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want BlockPos
	}{
		{name: "origin", v: Vec3{}, want: BlockPos{}},
		{name: "fraction", v: Vec3{X: 1.9, Y: 2.1, Z: 0.5}, want: BlockPos{X: 1, Y: 2, Z: 0}},
		{name: "negative floors down", v: Vec3{X: -0.1, Y: -1, Z: -1.5}, want: BlockPos{X: -1, Y: -1, Z: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.BlockPos(); got != tt.want {
				t.Errorf("BlockPos() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBlockPos_Down(t *testing.T) {
	p := BlockPos{X: 3, Y: 0, Z: -2}
	if got := p.Down(1); got != (BlockPos{X: 3, Y: -1, Z: -2}) {
		t.Errorf("Down(1) = %+v", got)
	}
	if p.Y != 0 {
		t.Error("Down must not mutate receiver")
	}
}

func TestBox_Intersects(t *testing.T) {
	query := BoxAround(Vec3{X: 5}, 2)

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{name: "overlapping", other: NewBox(Vec3{X: 6, Y: 0, Z: -0.3}, Vec3{X: 6.6, Y: 1.9, Z: 0.3}), want: true},
		{name: "contained", other: BoxAround(Vec3{X: 5}, 0.5), want: true},
		{name: "touching face", other: NewBox(Vec3{X: 7, Y: 0, Z: 0}, Vec3{X: 8, Y: 1, Z: 1}), want: false},
		{name: "far", other: BoxAround(Vec3{X: 20}, 1), want: false},
		{name: "above", other: NewBox(Vec3{X: 5, Y: 3, Z: 0}, Vec3{X: 6, Y: 4, Z: 1}), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := query.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(query); got != tt.want {
				t.Errorf("Intersects() is not symmetric")
			}
		})
	}
}

func TestNewBox_OrdersCorners(t *testing.T) {
	b := NewBox(Vec3{X: 2, Y: -1, Z: 5}, Vec3{X: -2, Y: 1, Z: 3})
	if b.Min != (Vec3{X: -2, Y: -1, Z: 3}) || b.Max != (Vec3{X: 2, Y: 1, Z: 5}) {
		t.Errorf("NewBox() = %+v", b)
	}
}
