// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through gaps in scrolling pipes. All positions are
// in a fixed logical playfield (600x500 by default); frontends scale it to
// whatever surface they draw on.
package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// ID is the game identifier used for screenshots and logs.
const ID = "flappy"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Phase     Phase
	Paused    bool
	Frame     int // Monotonic frame counter, drives decoration only
	Score     int
	HighScore int
	NewRecord bool // The last session ended with a new high score
	Player    Player
	Obstacles []Obstacle
}

// TickResult reports what a tick changed, for frontends that log or react.
type TickResult struct {
	Passed    int
	Ended     bool // The session ended this tick
	NewRecord bool // ...and set a new high score
}

// Game owns the phase machine and the simulation, and is the single mutator
// of both. Frontends call Jump on input and Tick once per displayed frame.
type Game struct {
	cfg       config.FlappyConfig
	sim       *Simulation
	scores    HighScoreStore
	phase     Phase
	paused    bool
	frame     int
	highScore int
	newRecord bool
}

// New creates a game in the idle phase. The high score is read once here.
// A nil store keeps the high score in memory.
func New(cfg config.FlappyConfig, seed int64, scores HighScoreStore) *Game {
	if scores == nil {
		scores = NewMemoryHighScores(0)
	}
	return &Game{
		cfg:       cfg,
		sim:       NewSimulation(cfg, seed),
		scores:    scores,
		phase:     PhaseIdle,
		highScore: scores.LoadHighScore(),
	}
}

// Jump is the only gameplay input. Idle and game-over start a new session,
// playing flaps. Ignored while paused.
func (g *Game) Jump() {
	if g.paused {
		return
	}
	g.apply(EventJump)
}

// TogglePause pauses or resumes a running session. Other phases ignore it.
func (g *Game) TogglePause() {
	if g.phase != PhasePlaying {
		return
	}
	g.paused = !g.paused
}

// Tick advances one displayed frame. The frame counter runs in every phase;
// the simulation only steps while playing.
func (g *Game) Tick() TickResult {
	if g.paused {
		return TickResult{}
	}

	g.frame++
	if g.phase != PhasePlaying {
		return TickResult{}
	}

	step := g.sim.Step(g.frame)
	result := TickResult{Passed: step.Passed}
	if step.Collided {
		g.apply(EventCollision)
		result.Ended = true
		result.NewRecord = g.newRecord
	}
	return result
}

// apply runs one state machine transition and performs its effect.
func (g *Game) apply(e Event) {
	next, effect := Transition(g.phase, e)
	g.phase = next

	switch effect {
	case EffectReset:
		g.sim.Reset()
		g.newRecord = false
	case EffectImpulse:
		g.sim.Flap()
	case EffectRecordScore:
		if score := g.sim.Score(); score > g.highScore {
			g.highScore = score
			g.newRecord = true
			g.scores.SaveHighScore(score)
		}
	}
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.sim.Obstacles()))
	copy(obstacles, g.sim.Obstacles())

	return Snapshot{
		Phase:     g.phase,
		Paused:    g.paused,
		Frame:     g.frame,
		Score:     g.sim.Score(),
		HighScore: g.highScore,
		NewRecord: g.newRecord,
		Player:    g.sim.Player(),
		Obstacles: obstacles,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.sim.Score()
}

// HighScore returns the best score seen, loaded or set this run.
func (g *Game) HighScore() int {
	return g.highScore
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
