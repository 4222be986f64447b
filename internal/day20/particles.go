// Package day20 simulates a swarm of particles with position,
// velocity, and constant acceleration.
package day20

import (
	"fmt"
	"regexp"
	"strconv"

	"advent2017/internal/numutil"
)

var particleRe = regexp.MustCompile(
	`^p=< ?(-?\d+), ?(-?\d+), ?(-?\d+)>, v=< ?(-?\d+), ?(-?\d+), ?(-?\d+)>, a=< ?(-?\d+), ?(-?\d+), ?(-?\d+)>$`)

// Vector is a 3d integer vector.
type Vector struct {
	X, Y, Z int
}

func (v *Vector) add(o Vector) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// manhattan is the absolute coordinate sum.
func (v Vector) manhattan() int {
	return abs(v.X) + abs(v.Y) + abs(v.Z)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Particle carries position, velocity, and acceleration.
type Particle struct {
	Position     Vector
	Velocity     Vector
	Acceleration Vector
}

// tick advances the particle one step: velocity absorbs acceleration,
// then position absorbs velocity.
func (p *Particle) tick() {
	p.Velocity.add(p.Acceleration)
	p.Position.add(p.Velocity)
}

// ParseParticles reads one "p=<..>, v=<..>, a=<..>" line per particle.
func ParseParticles(input string) ([]Particle, error) {
	var particles []Particle
	for i, line := range numutil.Lines(input) {
		m := particleRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed particle %q", i, line)
		}
		nums := make([]int, 9)
		for j := range nums {
			nums[j], _ = strconv.Atoi(m[j+1])
		}
		particles = append(particles, Particle{
			Position:     Vector{nums[0], nums[1], nums[2]},
			Velocity:     Vector{nums[3], nums[4], nums[5]},
			Acceleration: Vector{nums[6], nums[7], nums[8]},
		})
	}
	return particles, nil
}

// ClosestLongTerm returns the index of the particle nearest the
// origin far in the future, found by projecting every particle a
// million ticks out.
func ClosestLongTerm(particles []Particle) int {
	const horizon = 1_000_000
	closest := 0
	best := -1
	for i, p := range particles {
		// Position after t ticks under the per-tick update:
		// p + t*v + t*(t+1)/2 * a, evaluated per coordinate.
		t := horizon
		project := func(p0, v, a int) int {
			return p0 + t*v + t*(t+1)/2*a
		}
		d := abs(project(p.Position.X, p.Velocity.X, p.Acceleration.X)) +
			abs(project(p.Position.Y, p.Velocity.Y, p.Acceleration.Y)) +
			abs(project(p.Position.Z, p.Velocity.Z, p.Acceleration.Z))
		if best < 0 || d < best {
			best = d
			closest = i
		}
	}
	return closest
}

// Survivors simulates the swarm with collisions, removing every
// particle group that shares a position after a tick, and returns how
// many particles remain once collisions have settled.
func Survivors(particles []Particle) int {
	alive := make([]Particle, len(particles))
	copy(alive, particles)
	const ticks = 10_000
	for tick := 0; tick < ticks && len(alive) > 1; tick++ {
		at := make(map[Vector]int, len(alive))
		for i := range alive {
			alive[i].tick()
			at[alive[i].Position]++
		}
		kept := alive[:0]
		for _, p := range alive {
			if at[p.Position] == 1 {
				kept = append(kept, p)
			}
		}
		alive = kept
	}
	return len(alive)
}
