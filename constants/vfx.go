package constants

// Particle effect tuning.
const (
	MaxParticles = 512

	// ParticlesPerBurst is how many particles each catch or miss attempts
	// to create. Attempts beyond pool capacity are dropped silently.
	ParticlesPerBurst = 20

	ParticleSpeedMin = 50  // px/s
	ParticleSpeedMax = 200 // px/s

	ParticleLifeMin = 0.5 // seconds
	ParticleLifeVar = 0.5 // life = ParticleLifeMin + [0, ParticleLifeVar]

	ParticleGravity = 300 // px/s^2, downward
)
