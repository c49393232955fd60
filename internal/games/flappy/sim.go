package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// StepResult reports what happened during one simulation step.
type StepResult struct {
	Passed   int  // Pipes cleared this step
	Collided bool // The bird hit something; the session is over
}

// Simulation is the per-frame state that survives between ticks: the bird,
// the pipes and the running score. It knows nothing about phases; the Game
// only steps it while playing.
type Simulation struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	player     Player
	course     *Course
	score      int
	frames     int // Steps since the last Reset, drives time progression
}

// NewSimulation creates a simulation in its reset state.
func NewSimulation(cfg config.FlappyConfig, seed int64) *Simulation {
	s := &Simulation{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		course:     NewCourse(),
	}
	s.Reset()
	return s
}

// Reset puts the bird back at its start height at rest, clears the pipes and
// zeroes the score. The RNG keeps running so every session gets a new course.
func (s *Simulation) Reset() {
	s.player = Player{Y: s.cfg.Player.StartY}
	s.course.Reset()
	s.score = 0
	s.frames = 0
}

// Flap applies the jump impulse to the bird.
func (s *Simulation) Flap() {
	s.player.Flap(s.cfg.Physics.JumpImpulse)
}

// Step advances the simulation by one frame. frame is the global frame
// counter and decides the spawn cadence; difficulty follows the session's
// own step count.
func (s *Simulation) Step(frame int) StepResult {
	s.frames++
	s.player.Integrate(s.cfg.Physics.Gravity)

	period := s.difficulty.SpawnPeriod(s.cfg.Obstacles.SpawnPeriod, s.score, s.frames)
	if frame%period == 0 {
		s.course.Spawn(s.cfg.Field.Width, s.randomGapTop())
	}

	speed := s.difficulty.Speed(s.cfg.Obstacles.Speed, s.score, s.frames)
	s.course.Advance(speed, s.cfg.Obstacles.Width)

	passed := s.course.MarkPassed(s.cfg.Player.X, s.cfg.Obstacles.Width)
	s.score += passed

	return StepResult{
		Passed:   passed,
		Collided: Collides(s.player, s.course.Obstacles(), s.cfg),
	}
}

// randomGapTop draws a gap top uniformly from the configured range.
func (s *Simulation) randomGapTop() float64 {
	lo, hi := s.cfg.Obstacles.GapTopRange(s.cfg.Field.Height)
	return lo + s.rng.Float64()*(hi-lo)
}

// Player returns the bird.
func (s *Simulation) Player() Player {
	return s.player
}

// Obstacles returns the live pipes in spawn order.
func (s *Simulation) Obstacles() []Obstacle {
	return s.course.Obstacles()
}

// Score returns the running session score.
func (s *Simulation) Score() int {
	return s.score
}
