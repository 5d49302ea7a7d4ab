package testutil

import (
	"github.com/udisondev/katana/internal/game/slash"
	"github.com/udisondev/katana/internal/model"
)

// SoundEvent — записанный вызов PlaySound.
type SoundEvent struct {
	Pos      model.Vec3
	Sound    slash.SoundID
	Category slash.SoundCategory
	Volume   float32
	Pitch    float32
}

// ParticleEvent — записанный вызов SpawnParticles.
type ParticleEvent struct {
	Pos      model.Vec3
	Particle slash.ParticleID
	Count    int
	Spread   model.Vec3
	Speed    float64
}

// RecordingEmitter — slash.Emitter для unit тестов.
// Запоминает все вызовы; если Err задан, возвращает его из каждого вызова
// (вызов при этом всё равно записывается).
type RecordingEmitter struct {
	Sounds    []SoundEvent
	Particles []ParticleEvent
	Err       error
}

// NewRecordingEmitter создаёт пустой RecordingEmitter.
func NewRecordingEmitter() *RecordingEmitter {
	return &RecordingEmitter{}
}

// NewFailingEmitter создаёт RecordingEmitter, у которого каждый вызов падает с err.
func NewFailingEmitter(err error) *RecordingEmitter {
	return &RecordingEmitter{Err: err}
}

func (e *RecordingEmitter) PlaySound(pos model.Vec3, sound slash.SoundID, category slash.SoundCategory, volume, pitch float32) error {
	e.Sounds = append(e.Sounds, SoundEvent{
		Pos:      pos,
		Sound:    sound,
		Category: category,
		Volume:   volume,
		Pitch:    pitch,
	})
	return e.Err
}

func (e *RecordingEmitter) SpawnParticles(pos model.Vec3, particle slash.ParticleID, count int, spread model.Vec3, speed float64) error {
	e.Particles = append(e.Particles, ParticleEvent{
		Pos:      pos,
		Particle: particle,
		Count:    count,
		Spread:   spread,
		Speed:    speed,
	})
	return e.Err
}

// SoundsOf возвращает записанные вызовы для sound.
func (e *RecordingEmitter) SoundsOf(sound slash.SoundID) []SoundEvent {
	var out []SoundEvent
	for _, s := range e.Sounds {
		if s.Sound == sound {
			out = append(out, s)
		}
	}
	return out
}

// ParticlesOf возвращает записанные вызовы для particle.
func (e *RecordingEmitter) ParticlesOf(particle slash.ParticleID) []ParticleEvent {
	var out []ParticleEvent
	for _, p := range e.Particles {
		if p.Particle == particle {
			out = append(out, p)
		}
	}
	return out
}

// Reset очищает записанные вызовы.
func (e *RecordingEmitter) Reset() {
	e.Sounds = nil
	e.Particles = nil
}

// CountingSweeper — slash.Sweeper, который только считает вызовы.
type CountingSweeper struct {
	Calls  int
	Events []slash.ReleaseEvent
	Result slash.SweepResult
}

func (s *CountingSweeper) ResolveSweep(ev slash.ReleaseEvent, actor *model.Actor, weapon *model.Weapon) slash.SweepResult {
	s.Calls++
	s.Events = append(s.Events, ev)
	return s.Result
}
