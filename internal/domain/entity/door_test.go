package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewDoor_BoxFollowsDirection(t *testing.T) {
	ns := NewDoor(mgl32.Vec3{3, 0, 5}, 0, 1, 0.5, 0.2)
	assert.Equal(t, mgl32.Vec3{-0.2, -0.5, -1}, ns.Min)
	assert.Equal(t, mgl32.Vec3{0.2, 0.5, 1}, ns.Max)
	assert.Equal(t, float32(3), ns.StartX)
	assert.Equal(t, float32(5), ns.StartZ)

	ew := NewDoor(mgl32.Vec3{3, 0, 5}, 1, 1, 0.5, 0.2)
	assert.Equal(t, mgl32.Vec3{-1, -0.5, -0.2}, ew.Min)
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0.2}, ew.Max)
}

func TestDoor_Slide(t *testing.T) {
	tests := []struct {
		dir          int
		wantX, wantZ float32
	}{
		{0, 3, 6.5},
		{1, 4.5, 5},
		{2, 3, 3.5},
		{3, 1.5, 5},
	}

	for _, tt := range tests {
		d := NewDoor(mgl32.Vec3{3, 0, 5}, tt.dir, 1, 0.5, 0.2)
		d.Openness = 1

		x, z := d.Slide(1.5)
		assert.InDelta(t, tt.wantX, x, 1e-5, "dir %d", tt.dir)
		assert.InDelta(t, tt.wantZ, z, 1e-5, "dir %d", tt.dir)
	}

	closed := NewDoor(mgl32.Vec3{3, 0, 5}, 1, 1, 0.5, 0.2)
	x, z := closed.Slide(1.5)
	assert.Equal(t, float32(3), x)
	assert.Equal(t, float32(5), z)
}

func TestDoor_Toggle(t *testing.T) {
	d := NewDoor(mgl32.Vec3{}, 0, 1, 0.5, 0.2)

	d.Toggle()
	assert.True(t, d.Open)
	d.Toggle()
	assert.False(t, d.Open)
}

func TestPainting_Knock(t *testing.T) {
	p := NewPainting(mgl32.Vec3{}, 1, 1, 0.3, 0.3)
	assert.Equal(t, mgl32.Vec3{-0.3, -0.3, -1}, p.Min)
	assert.False(t, p.Hit)

	p.Knock(0.25)
	p.Knock(-0.5)

	assert.True(t, p.Hit)
	assert.InDelta(t, -0.25, p.AngularVel, 1e-6)
}
