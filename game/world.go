package game

import (
	"math"
	"math/rand"

	"github.com/halvard/orbfall/constants"
)

// EventKind distinguishes the two ways an orb leaves play.
type EventKind uint8

const (
	EventCatch EventKind = iota
	EventMiss
)

// Event records an orb leaving play this frame, for the shell to turn into
// sound. The particle burst has already been spawned by the time the event
// is returned.
type Event struct {
	Kind  EventKind
	Pos   Vec2
	Color Color
}

// World holds the complete simulation state. Step is the only mutator
// during play and performs no I/O; with a seeded rng the simulation is
// fully deterministic.
type World struct {
	Orbs      *Pool[Orb]
	Particles *Pool[Particle]
	Score     int

	spawnTimer float64
	rng        *rand.Rand
	events     []Event
}

// NewWorld creates a world with empty pools drawing randomness from rng.
func NewWorld(rng *rand.Rand) *World {
	return &World{
		Orbs:      NewPool[Orb](constants.MaxOrbs),
		Particles: NewPool[Particle](constants.MaxParticles),
		rng:       rng,
	}
}

// SpawnOrb activates one orb with a random radius, color, and horizontal
// position, just above the top edge. When the pool is full the call is a
// silent no-op.
func (w *World) SpawnOrb() {
	i, ok := w.Orbs.Alloc()
	if !ok {
		return
	}
	o := w.Orbs.At(i)
	radius := float64(constants.OrbRadiusMin + w.rng.Intn(constants.OrbRadiusVar))
	o.Radius = radius
	// Keep the full circle inside the world horizontally.
	o.Pos = Vec2{
		X: radius + float64(w.rng.Intn(constants.WorldWidth-2*int(radius))),
		Y: -radius,
	}
	o.Color = Color{
		R: uint8(RandRange(w.rng, constants.OrbColorFloor, 255)),
		G: uint8(RandRange(w.rng, constants.OrbColorFloor, 255)),
		B: uint8(RandRange(w.rng, constants.OrbColorFloor, 255)),
		A: 255,
	}
}

// SpawnParticles bursts ParticlesPerBurst particles outward from origin in
// the given color. Each particle that finds no free slot is skipped
// silently.
func (w *World) SpawnParticles(origin Vec2, col Color) {
	for n := 0; n < constants.ParticlesPerBurst; n++ {
		i, ok := w.Particles.Alloc()
		if !ok {
			continue
		}
		p := w.Particles.At(i)
		angle := float64(RandRange(w.rng, 0, 360)) * math.Pi / 180
		speed := float64(RandRange(w.rng, constants.ParticleSpeedMin, constants.ParticleSpeedMax))
		p.Pos = origin
		p.Vel = Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		p.Color = col
		p.Life = constants.ParticleLifeMin + float64(RandRange(w.rng, 0, 500))/1000
	}
}

// PaddleRect derives the paddle rectangle for the given mouse x. The paddle
// is never stored; it exists only for the frame being computed.
func (w *World) PaddleRect(mouseX float64) Rect {
	return Rect{
		X: mouseX - constants.PaddleWidth/2,
		Y: constants.WorldHeight - constants.PaddleLift - constants.PaddleHeight/2,
		W: constants.PaddleWidth,
		H: constants.PaddleHeight,
	}
}

// Step advances the simulation by dt seconds with the paddle centered on
// paddleX, in this order: spawn timer, orb fall and catch/miss resolution,
// then particle integration. It returns the catch and miss events produced
// this frame; the returned slice is reused across calls.
func (w *World) Step(dt, paddleX float64) []Event {
	w.events = w.events[:0]

	w.spawnTimer += dt
	if w.spawnTimer >= constants.OrbSpawnInterval {
		w.SpawnOrb()
		w.spawnTimer = 0
	}

	paddle := w.PaddleRect(paddleX)

	for i := 0; i < w.Orbs.Cap(); i++ {
		if w.Orbs.State(i) != SlotActive {
			continue
		}
		o := w.Orbs.At(i)
		o.Pos.Y += constants.OrbFallSpeed * dt

		// Catch takes precedence over miss.
		switch {
		case CircleRectOverlap(o.Pos, o.Radius, paddle):
			w.Score++
			w.SpawnParticles(o.Pos, o.Color)
			w.events = append(w.events, Event{Kind: EventCatch, Pos: o.Pos, Color: o.Color})
			w.Orbs.Release(i)
		case o.Pos.Y-o.Radius > constants.WorldHeight:
			at := Vec2{X: o.Pos.X, Y: constants.WorldHeight}
			w.SpawnParticles(at, o.Color)
			w.events = append(w.events, Event{Kind: EventMiss, Pos: at, Color: o.Color})
			w.Orbs.Release(i)
		}
	}

	// Explicit Euler, one step per frame: decrement life, move with the old
	// velocity, then apply gravity. Particles spawned above are integrated
	// in the same frame.
	for i := 0; i < w.Particles.Cap(); i++ {
		if w.Particles.State(i) != SlotActive {
			continue
		}
		p := w.Particles.At(i)
		p.Life -= dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel.Y += constants.ParticleGravity * dt
		if p.Life <= 0 {
			w.Particles.Release(i)
		}
	}

	return w.events
}
