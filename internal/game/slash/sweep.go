package slash

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/udisondev/katana/internal/config"
	"github.com/udisondev/katana/internal/game/geo"
	"github.com/udisondev/katana/internal/model"
)

// ReleaseEvent is the input of one slash.
type ReleaseEvent struct {
	Origin         model.Vec3 // eye position at release
	Direction      model.Vec3 // unit aim vector at release
	MaxRange       float64
	ChargeDuration int64 // ticks held
}

// SweepPath is the sampled line from origin to the terminal point:
// Steps points spaced one block apart, Steps = floor(|terminal - origin|).
type SweepPath struct {
	Origin    model.Vec3
	Terminal  model.Vec3
	Distance  float64
	Increment model.Vec3 // unit step toward the terminal point
	Steps     int
}

// NewSweepPath computes the path between origin and terminal.
// A zero-length or non-finite path has no steps.
func NewSweepPath(origin, terminal model.Vec3) SweepPath {
	p := SweepPath{Origin: origin, Terminal: terminal}

	delta := terminal.Sub(origin)
	p.Distance = delta.Length()
	if p.Distance == 0 || math.IsNaN(p.Distance) || math.IsInf(p.Distance, 0) {
		p.Distance = 0
		return p
	}

	p.Increment = delta.Scale(1 / p.Distance)
	p.Steps = int(math.Floor(p.Distance))
	return p
}

// Points returns the sample points: origin advanced by 1..Steps increments.
func (p SweepPath) Points() []model.Vec3 {
	points := make([]model.Vec3, 0, p.Steps)
	cur := p.Origin
	for range p.Steps {
		cur = cur.Add(p.Increment)
		points = append(points, cur)
	}
	return points
}

// SweepResult summarizes one resolved slash.
type SweepResult struct {
	Terminal    model.Vec3 // ray terminal point
	Destination model.Vec3 // where the actor was teleported
	Blocked     bool       // the ray stopped on a block
	Samples     int        // sample points visited
	Struck      []uint32   // objectIDs damaged, in strike order
	Damage      float64    // damage dealt per strike
	Modifier    string     // hit modifier name, "" if none
}

// Engine resolves slashes. It keeps no state between calls: the sample
// cursor and the set of struck targets live only inside ResolveSweep.
type Engine struct {
	cfg     config.Ability
	terrain Terrain
	targets TargetQuery
	emitter Emitter

	random func() float64 // pitch jitter source, [0,1)
}

// NewEngine creates a slash engine.
func NewEngine(cfg config.Ability, terrain Terrain, targets TargetQuery, emitter Emitter) *Engine {
	return &Engine{
		cfg:     cfg,
		terrain: terrain,
		targets: targets,
		emitter: emitter,
		random:  rand.Float64,
	}
}

// SetRandomSource replaces the pitch jitter source.
func (e *Engine) SetRandomSource(fn func() float64) {
	e.random = fn
}

// Cast returns the ray end point for a release: origin + direction·maxRange,
// with the vertical aim dropped when LevelAim is on. A non-finite direction
// is treated as no direction at all.
func (e *Engine) Cast(ev ReleaseEvent) model.Vec3 {
	dir := ev.Direction
	if !dir.IsFinite() {
		dir = model.Vec3{}
	}
	if e.cfg.LevelAim {
		dir.Y = 0
	}
	return ev.Origin.Add(dir.Scale(ev.MaxRange))
}

// ResolveSweep performs the slash: cast the ray, walk the path one block at a
// time damaging every hostile near each sample point once, then teleport the
// actor to the terminal point.
func (e *Engine) ResolveSweep(ev ReleaseEvent, actor *model.Actor, weapon *model.Weapon) SweepResult {
	modifier := ModifierOf(weapon)

	end := e.Cast(ev)
	hit := e.terrain.Raycast(ev.Origin, end, geo.FluidNone)
	terminal := hit.Pos
	if !terminal.IsFinite() {
		terminal = ev.Origin
	}

	result := SweepResult{
		Terminal: terminal,
		Blocked:  hit.Type == geo.HitBlock,
		Damage:   weapon.AttackDamage() / e.cfg.DamageDivisor,
	}
	if modifier != nil {
		result.Modifier = modifier.Name()
	}

	actorPos := actor.Position()
	e.sound(actorPos, SoundKatanaSwoop, 1.0, 1.0)
	if modifier != nil {
		e.sound(actorPos, modifier.Sound(), 2.0, 0.25)
	}

	path := NewSweepPath(ev.Origin, terminal)
	struck := make(map[uint32]struct{})
	notStruck := func(m *model.Mob) bool {
		_, seen := struck[m.ObjectID()]
		return !seen
	}

	current := ev.Origin
	for range path.Steps {
		e.particles(current.Offset(0, e.cfg.BurstYOffset, 0), ParticleCrit, 5)
		current = current.Add(path.Increment)

		if modifier != nil {
			e.particles(current.Offset(0, e.cfg.BurstYOffset, 0), modifier.Particle(), 5)
		}

		box := model.BoxAround(current, e.cfg.SearchHalfExtent)
		for _, target := range e.targets.HostilesInBox(box, notStruck) {
			if !notStruck(target) {
				continue
			}
			e.strike(target, actor, weapon, modifier, result.Damage)
			struck[target.ObjectID()] = struct{}{}
			result.Struck = append(result.Struck, target.ObjectID())
		}
		result.Samples++
	}

	drop := 0.0
	if e.terrain.IsAir(terminal.BlockPos().Down(1)) {
		drop = 1
	}
	result.Destination = terminal.Offset(0, -drop, 0)
	actor.Teleport(result.Destination)

	slog.Debug("slash resolved",
		"actor", actor.Name(),
		"weapon", weapon.Name(),
		"modifier", result.Modifier,
		"terminal", result.Terminal,
		"blocked", result.Blocked,
		"samples", result.Samples,
		"struck", len(result.Struck))

	return result
}

// strike applies damage, the modifier side effect, and strike feedback.
func (e *Engine) strike(target *model.Mob, actor *model.Actor, weapon *model.Weapon, modifier HitModifier, damage float64) {
	target.ApplyDamage(actor, damage)

	if modifier != nil {
		modifier.OnHit(target, actor, weapon)
	}

	pos := target.Position()
	e.sound(pos, SoundKatanaSwoop, 2.0, e.jitterPitch())
	e.sound(pos, SoundGenericExplode, 0.5, e.jitterPitch())
	e.particles(pos.Offset(0, e.cfg.BurstYOffset, 0), ParticlePortal, 25)
	if modifier != nil {
		e.sound(pos, modifier.Sound(), 1.0, 1.0)
	}
}

// jitterPitch returns a pitch in [1.5, 2.0).
func (e *Engine) jitterPitch() float32 {
	return 1.5 + float32(e.random())*0.5
}

func (e *Engine) sound(pos model.Vec3, sound SoundID, volume, pitch float32) {
	if err := e.emitter.PlaySound(pos, sound, CategoryPlayers, volume, pitch); err != nil {
		slog.Debug("sound dropped", "sound", sound, "error", err)
	}
}

func (e *Engine) particles(pos model.Vec3, particle ParticleID, count int) {
	if err := e.emitter.SpawnParticles(pos, particle, count, model.Vec3{}, 0.1); err != nil {
		slog.Debug("particles dropped", "particle", particle, "error", err)
	}
}
