// Package effects holds short-lived display records produced by mining.
//
// Effects never feed back into the simulation. Each record carries its
// creation time and a fixed lifetime; expiry is a query on the record and
// the consumer decides when to purge.
package effects

import (
	"time"

	"github.com/samdwyer/darkmine/internal/world"
)

const (
	SwingLifetime    = 300 * time.Millisecond
	ParticleLifetime = 1500 * time.Millisecond
)

// ParticleKind selects the look of a particle burst.
type ParticleKind int

const (
	ParticleRock ParticleKind = iota
	ParticleCoal
	ParticleOre
	ParticleDiamond
	ParticleTrap
)

// String returns the id of the tile whose colors the particle borrows.
func (k ParticleKind) String() string {
	switch k {
	case ParticleRock:
		return "rock"
	case ParticleCoal:
		return "coal"
	case ParticleOre:
		return "ore"
	case ParticleDiamond:
		return "diamond"
	case ParticleTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// MiningSwing is the pickaxe swing drawn next to the player after a mine.
type MiningSwing struct {
	ID        uint64
	Position  world.Position
	Direction world.Direction
	CreatedAt time.Time
}

// Expired reports whether the swing should no longer be drawn.
func (s MiningSwing) Expired(now time.Time) bool {
	return now.Sub(s.CreatedAt) >= SwingLifetime
}

// Progress returns how far through its lifetime the swing is, in [0,1].
func (s MiningSwing) Progress(now time.Time) float64 {
	return progress(s.CreatedAt, now, SwingLifetime)
}

// Particle is a burst of debris at a mined cell.
type Particle struct {
	ID        uint64
	Position  world.Position
	Kind      ParticleKind
	CreatedAt time.Time
}

// Expired reports whether the particle should no longer be drawn.
func (p Particle) Expired(now time.Time) bool {
	return now.Sub(p.CreatedAt) >= ParticleLifetime
}

// Progress returns how far through its lifetime the particle is, in [0,1].
func (p Particle) Progress(now time.Time) float64 {
	return progress(p.CreatedAt, now, ParticleLifetime)
}

func progress(created, now time.Time, lifetime time.Duration) float64 {
	elapsed := now.Sub(created)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= lifetime {
		return 1
	}
	return float64(elapsed) / float64(lifetime)
}

// Queue owns the live effects of one game session. Not safe for concurrent use.
type Queue struct {
	nextID    uint64
	swings    []MiningSwing
	particles []Particle
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// AddSwing records a swing at pos facing dir and returns it.
func (q *Queue) AddSwing(pos world.Position, dir world.Direction, now time.Time) MiningSwing {
	q.nextID++
	s := MiningSwing{ID: q.nextID, Position: pos, Direction: dir, CreatedAt: now}
	q.swings = append(q.swings, s)
	return s
}

// AddParticle records a particle burst at pos and returns it.
func (q *Queue) AddParticle(pos world.Position, kind ParticleKind, now time.Time) Particle {
	q.nextID++
	p := Particle{ID: q.nextID, Position: pos, Kind: kind, CreatedAt: now}
	q.particles = append(q.particles, p)
	return p
}

// Purge drops every expired effect and returns how many were removed.
func (q *Queue) Purge(now time.Time) int {
	removed := 0

	swings := q.swings[:0]
	for _, s := range q.swings {
		if s.Expired(now) {
			removed++
			continue
		}
		swings = append(swings, s)
	}
	q.swings = swings

	particles := q.particles[:0]
	for _, p := range q.particles {
		if p.Expired(now) {
			removed++
			continue
		}
		particles = append(particles, p)
	}
	q.particles = particles

	return removed
}

// Swings returns a copy of the swings still alive at now.
func (q *Queue) Swings(now time.Time) []MiningSwing {
	out := make([]MiningSwing, 0, len(q.swings))
	for _, s := range q.swings {
		if !s.Expired(now) {
			out = append(out, s)
		}
	}
	return out
}

// Particles returns a copy of the particles still alive at now.
func (q *Queue) Particles(now time.Time) []Particle {
	out := make([]Particle, 0, len(q.particles))
	for _, p := range q.particles {
		if !p.Expired(now) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of stored effects, expired or not.
func (q *Queue) Len() int {
	return len(q.swings) + len(q.particles)
}

// Clear drops everything. Ids keep counting up.
func (q *Queue) Clear() {
	q.swings = nil
	q.particles = nil
}
