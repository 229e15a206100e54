package effects

import (
	"math/rand/v2"
	"sync"
	"time"
)

// DefaultParticleLifetime is how long a particle lives before it is replaced.
const DefaultParticleLifetime = 6 * time.Second

// Particle is one floating dot of the background.
type Particle struct {
	Slot       int     `json:"slot"`
	Generation int     `json:"generation"`
	LeftPct    float64 `json:"left"`
	DelaySec   float64 `json:"delay"`
	DurationS  float64 `json:"duration"`
}

func newParticle(slot, generation int, rng *rand.Rand) Particle {
	return Particle{
		Slot:       slot,
		Generation: generation,
		LeftPct:    rng.Float64() * 100,
		DelaySec:   rng.Float64() * 6,
		DurationS:  rng.Float64()*4 + 4,
	}
}

// ParticlePool keeps a fixed number of particles alive. Each slot has its
// own cancellable timer; when it fires the particle is replaced in place.
type ParticlePool struct {
	mu        sync.Mutex
	particles []Particle
	timers    []*time.Timer
	lifetime  time.Duration
	rng       *rand.Rand
	stopped   bool
	respawned int
}

// NewParticlePool creates size particles and schedules their lifetimes.
func NewParticlePool(size int, lifetime time.Duration, seed uint64) *ParticlePool {
	if lifetime <= 0 {
		lifetime = DefaultParticleLifetime
	}
	p := &ParticlePool{
		particles: make([]Particle, size),
		timers:    make([]*time.Timer, size),
		lifetime:  lifetime,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.particles {
		p.particles[i] = newParticle(i, 0, p.rng)
		p.schedule(i)
	}
	return p
}

func (p *ParticlePool) schedule(slot int) {
	p.timers[slot] = time.AfterFunc(p.lifetime, func() { p.respawn(slot) })
}

func (p *ParticlePool) respawn(slot int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	gen := p.particles[slot].Generation + 1
	p.particles[slot] = newParticle(slot, gen, p.rng)
	p.respawned++
	p.schedule(slot)
}

// Size is the constant population of the pool.
func (p *ParticlePool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.particles)
}

// Respawned counts replacements since the pool was created.
func (p *ParticlePool) Respawned() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.respawned
}

// Snapshot returns the live particles.
func (p *ParticlePool) Snapshot() []Particle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Particle(nil), p.particles...)
}

// Stop cancels every pending respawn.
func (p *ParticlePool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	for _, t := range p.timers {
		if t != nil {
			t.Stop()
		}
	}
}
