package entity

import "goldrush/pkg/engine/fixed"

// ParticleKind distinguishes chained smoke-particle animation stages from
// one-shot impact particles.
type ParticleKind uint8

const (
	ParticleImpact ParticleKind = iota
	ParticleSmokeStart
	ParticleSmokeLoop
	ParticleSmokeEnd
)

// Projectile is a simple fixed-speed travelling shot (cannonballs, thrown
// dynamite). It is tracked outside the main Entity store since it never
// occupies the grid and carries no id-stable identity other players
// reference.
type Projectile struct {
	Position fixed.FVec
	Target   fixed.FVec
	Speed    fixed.Fixed
	OnArrive ParticleKind
	Damage   int32
	TargetID EntityID
}

// Particle is a transient visual/audio effect with a fixed lifetime,
// chained for smoke (start -> loop... -> end).
type Particle struct {
	Kind      ParticleKind
	Frame     uint32
	LoopCount uint32 // remaining loop iterations before chaining to End
}

const smokeFrameDuration = 20

// AdvanceProjectile moves p toward its target by Speed; reports true once
// it has arrived (caller spawns the impact particle/plays a sound/removes
// it, per spec.md §4.H).
func AdvanceProjectile(p *Projectile) bool {
	delta := p.Target.Sub(p.Position)
	remainingSq := delta.X.Mul(delta.X).Add(delta.Y.Mul(delta.Y))
	if remainingSq <= p.Speed.Mul(p.Speed) {
		p.Position = p.Target
		return true
	}
	p.Position = p.Position.Add(delta.Normalize().Scale(p.Speed))
	return false
}

// AdvanceParticle advances one tick of particle animation. Reports true
// once the particle (or, for smoke, its End stage) has fully played and
// should be removed.
func AdvanceParticle(p *Particle) bool {
	p.Frame++
	if p.Frame < smokeFrameDuration {
		return false
	}
	p.Frame = 0

	switch p.Kind {
	case ParticleSmokeStart:
		p.Kind = ParticleSmokeLoop
		return false
	case ParticleSmokeLoop:
		if p.LoopCount > 0 {
			p.LoopCount--
			return false
		}
		p.Kind = ParticleSmokeEnd
		return false
	case ParticleSmokeEnd:
		return true
	default: // ParticleImpact
		return true
	}
}
