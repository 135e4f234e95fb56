package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/wolf3d/internal/domain/geom"
)

// Impact is a bullet hole decal. A slot with Life <= 0 is free.
type Impact struct {
	Pos  mgl32.Vec3
	Life float32 // seconds remaining
	Dir  int     // compass direction the decal faces
}

// Tracer is a short streak flying along a shot. A slot with Life <= 0 is free.
type Tracer struct {
	Pos       mgl32.Vec3
	Life      float32 // seconds remaining
	ShotAngle float32 // radians
}

// ImpactPool is a fixed-capacity set of impact slots.
type ImpactPool struct {
	slots []Impact
}

// NewImpactPool creates a pool with capacity free slots.
func NewImpactPool(capacity int) *ImpactPool {
	return &ImpactPool{slots: make([]Impact, capacity)}
}

// Create claims the first free slot. When every slot is in use the impact is
// dropped and Create returns false; live impacts are never evicted.
func (p *ImpactPool) Create(pos mgl32.Vec3, dir int, life float32) bool {
	for i := range p.slots {
		if p.slots[i].Life <= 0 {
			p.slots[i] = Impact{Pos: pos, Life: life, Dir: dir}
			return true
		}
	}
	return false
}

// Tick ages every slot by dt, free ones included.
func (p *ImpactPool) Tick(dt float32) {
	for i := range p.slots {
		p.slots[i].Life -= dt
	}
}

// Slots returns the backing slots. Callers must skip Life <= 0.
func (p *ImpactPool) Slots() []Impact {
	return p.slots
}

// Cap returns the pool capacity.
func (p *ImpactPool) Cap() int {
	return len(p.slots)
}

// Active returns the number of live impacts.
func (p *ImpactPool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Life > 0 {
			n++
		}
	}
	return n
}

// TracerPool is a fixed-capacity set of tracer slots.
type TracerPool struct {
	slots []Tracer
}

// NewTracerPool creates a pool with capacity free slots.
func NewTracerPool(capacity int) *TracerPool {
	return &TracerPool{slots: make([]Tracer, capacity)}
}

// Create claims the first free slot, or drops the tracer when full.
func (p *TracerPool) Create(pos mgl32.Vec3, angle, life float32) bool {
	for i := range p.slots {
		if p.slots[i].Life <= 0 {
			p.slots[i] = Tracer{Pos: pos, Life: life, ShotAngle: angle}
			return true
		}
	}
	return false
}

// Tick moves live tracers along their shot angle at speed and ages every slot.
func (p *TracerPool) Tick(dt, speed float32) {
	for i := range p.slots {
		t := &p.slots[i]
		if t.Life > 0 {
			t.Pos = t.Pos.Add(geom.Forward(t.ShotAngle, speed*dt))
		}
		t.Life -= dt
	}
}

// Slots returns the backing slots. Callers must skip Life <= 0.
func (p *TracerPool) Slots() []Tracer {
	return p.slots
}

// Cap returns the pool capacity.
func (p *TracerPool) Cap() int {
	return len(p.slots)
}

// Active returns the number of live tracers.
func (p *TracerPool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Life > 0 {
			n++
		}
	}
	return n
}
