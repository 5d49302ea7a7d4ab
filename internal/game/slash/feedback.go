package slash

import (
	"log/slog"

	"github.com/udisondev/katana/internal/model"
)

// SoundID names a sound asset.
type SoundID string

// ParticleID names a particle asset.
type ParticleID string

// SoundCategory is the mixer channel a sound plays on.
type SoundCategory string

const CategoryPlayers SoundCategory = "players"

// Base slash feedback.
const (
	SoundKatanaSwoop    SoundID    = "gateofbabylon:katana_swoop"
	SoundGenericExplode SoundID    = "minecraft:entity.generic.explode"
	ParticleCrit        ParticleID = "minecraft:crit"
	ParticlePortal      ParticleID = "minecraft:portal"
)

// Emitter plays sounds and particles for observers. Errors are reported but a
// failed effect never interrupts the slash.
type Emitter interface {
	PlaySound(pos model.Vec3, sound SoundID, category SoundCategory, volume, pitch float32) error
	SpawnParticles(pos model.Vec3, particle ParticleID, count int, spread model.Vec3, speed float64) error
}

// LogEmitter is an Emitter that writes every effect to slog at debug level.
type LogEmitter struct{}

func (LogEmitter) PlaySound(pos model.Vec3, sound SoundID, category SoundCategory, volume, pitch float32) error {
	slog.Debug("sound",
		"sound", sound,
		"category", category,
		"pos", pos,
		"volume", volume,
		"pitch", pitch)
	return nil
}

func (LogEmitter) SpawnParticles(pos model.Vec3, particle ParticleID, count int, spread model.Vec3, speed float64) error {
	slog.Debug("particles",
		"particle", particle,
		"pos", pos,
		"count", count,
		"spread", spread,
		"speed", speed)
	return nil
}
