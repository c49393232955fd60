package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

func newTestGame(t *testing.T, high int) (*Game, *MemoryHighScores) {
	t.Helper()
	store := NewMemoryHighScores(high)
	return New(config.DefaultFlappyConfig(), 12345, store), store
}

// crash drops the bird into the ground and ticks once.
func crash(t *testing.T, g *Game) TickResult {
	t.Helper()
	g.sim.player = Player{Y: 500}
	res := g.Tick()
	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected game over after crashing, phase = %v", g.Phase())
	}
	return res
}

func TestGameStartsIdle(t *testing.T) {
	g, _ := newTestGame(t, 0)

	if g.Phase() != PhaseIdle {
		t.Errorf("new game phase = %v, expected idle", g.Phase())
	}

	// Ticking while idle advances decoration only
	before := g.Snapshot().Player
	g.Tick()
	snap := g.Snapshot()
	if snap.Player != before {
		t.Errorf("bird should not move while idle: %+v -> %+v", before, snap.Player)
	}
	if snap.Frame != 1 {
		t.Errorf("frame counter should run while idle, got %d", snap.Frame)
	}
}

func TestJumpFromIdleResetsWithoutImpulse(t *testing.T) {
	g, _ := newTestGame(t, 0)

	g.Jump()

	snap := g.Snapshot()
	if snap.Phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", snap.Phase)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if snap.Player.Velocity != 0 {
		t.Errorf("starting a session must not apply the impulse, velocity = %g", snap.Player.Velocity)
	}
	if snap.Player.Y != g.cfg.Player.StartY {
		t.Errorf("bird y = %g, expected start %g", snap.Player.Y, g.cfg.Player.StartY)
	}
}

func TestJumpWhilePlayingSetsImpulse(t *testing.T) {
	g, _ := newTestGame(t, 0)
	g.Jump()
	for i := 0; i < 10; i++ {
		g.Tick()
	}

	g.Jump()
	if v := g.Snapshot().Player.Velocity; v != g.cfg.Physics.JumpImpulse {
		t.Fatalf("velocity after jump = %g, expected %g", v, g.cfg.Physics.JumpImpulse)
	}
	g.Jump()
	if v := g.Snapshot().Player.Velocity; v != g.cfg.Physics.JumpImpulse {
		t.Errorf("second jump should assign again, velocity = %g", v)
	}
}

func TestFreeFallFollowsEulerWithoutScoring(t *testing.T) {
	g, _ := newTestGame(t, 0)
	g.Jump()
	gravity := g.cfg.Physics.Gravity

	// 24 frames of free fall from y=250 end exactly on the ground line
	for i := 0; i < 24; i++ {
		before := g.Snapshot().Player
		res := g.Tick()
		after := g.Snapshot().Player

		if after.Velocity != before.Velocity+gravity {
			t.Fatalf("tick %d: velocity %g -> %g, expected +%g", i, before.Velocity, after.Velocity, gravity)
		}
		if after.Y != before.Y+after.Velocity {
			t.Fatalf("tick %d: y %g -> %g, expected +%g", i, before.Y, after.Y, after.Velocity)
		}
		if res.Ended {
			t.Fatalf("tick %d: unexpected collision at y=%g", i, after.Y)
		}
	}

	if g.Phase() != PhasePlaying || g.Score() != 0 {
		t.Errorf("after free fall: phase=%v score=%d, expected playing/0", g.Phase(), g.Score())
	}
}

func TestCollisionEndsSession(t *testing.T) {
	g, store := newTestGame(t, 0)
	g.Jump()

	res := crash(t, g)
	if !res.Ended {
		t.Error("TickResult should report the session end")
	}
	if res.NewRecord {
		t.Error("a zero score is not a record")
	}
	if store.Saves() != 0 {
		t.Errorf("no save expected without a new record, got %d", store.Saves())
	}

	// Nothing moves after game over
	before := g.Snapshot().Player
	g.Tick()
	if g.Snapshot().Player != before {
		t.Error("bird should not move after game over")
	}
}

func TestHighScoreIsMaxOfSessions(t *testing.T) {
	g, store := newTestGame(t, 5)
	if g.HighScore() != 5 {
		t.Fatalf("high score should load from the store, got %d", g.HighScore())
	}

	// Lower score keeps the record
	g.Jump()
	g.sim.score = 3
	crash(t, g)
	if g.HighScore() != 5 || store.Saves() != 0 {
		t.Errorf("after score 3: high=%d saves=%d, expected 5/0", g.HighScore(), store.Saves())
	}

	// Higher score replaces and persists it
	g.Jump()
	g.sim.score = 8
	res := crash(t, g)
	if !res.NewRecord {
		t.Error("score 8 should be reported as a new record")
	}
	if g.HighScore() != 8 || store.LoadHighScore() != 8 || store.Saves() != 1 {
		t.Errorf("after score 8: high=%d stored=%d saves=%d", g.HighScore(), store.LoadHighScore(), store.Saves())
	}
	if !g.Snapshot().NewRecord {
		t.Error("snapshot should flag the new record for the game over screen")
	}

	// Equal score is not a new record
	g.Jump()
	g.sim.score = 8
	crash(t, g)
	if store.Saves() != 1 {
		t.Errorf("tying the record should not save, saves=%d", store.Saves())
	}
}

func TestRestartResetsSession(t *testing.T) {
	g, _ := newTestGame(t, 0)
	g.Jump()
	g.sim.course.Spawn(300, 100)
	g.sim.score = 4
	crash(t, g)

	g.Jump()

	snap := g.Snapshot()
	if snap.Phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", snap.Phase)
	}
	if snap.Score != 0 || len(snap.Obstacles) != 0 || snap.NewRecord {
		t.Errorf("restart should clear score, pipes and record flag: %+v", snap)
	}
	if snap.Player != (Player{Y: g.cfg.Player.StartY}) {
		t.Errorf("restart should put the bird at rest at the start, got %+v", snap.Player)
	}
}

func TestPause(t *testing.T) {
	g, _ := newTestGame(t, 0)

	g.TogglePause()
	if g.Snapshot().Paused {
		t.Fatal("pause should be ignored while idle")
	}

	g.Jump()
	g.TogglePause()
	before := g.Snapshot()
	g.Tick()
	g.Jump()
	after := g.Snapshot()

	if !after.Paused {
		t.Fatal("game should be paused")
	}
	if after.Player != before.Player || after.Frame != before.Frame {
		t.Error("nothing should advance while paused")
	}

	g.TogglePause()
	g.Tick()
	if g.Snapshot().Frame != before.Frame+1 {
		t.Error("ticks should resume after unpausing")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(config.DefaultFlappyConfig(), 2024, nil)
		g.Jump()
		for i := 0; i < 400 && g.Phase() == PhasePlaying; i++ {
			if i%18 == 0 {
				g.Jump()
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Frame != b.Frame || a.Score != b.Score || a.Player != b.Player || len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
	for i := range a.Obstacles {
		if a.Obstacles[i] != b.Obstacles[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, a.Obstacles[i], b.Obstacles[i])
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _ := newTestGame(t, 0)
	g.Jump()
	g.sim.course.Spawn(300, 100)

	snap := g.Snapshot()
	snap.Obstacles[0].X = -1000

	if g.sim.Obstacles()[0].X != 300 {
		t.Error("mutating a snapshot must not touch the simulation")
	}
}

func TestNilStoreDefaultsToMemory(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), 1, nil)
	if g.HighScore() != 0 {
		t.Errorf("high score without a store = %d, expected 0", g.HighScore())
	}
}

func TestTimeProgressionRestartsWithSession(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Progression = config.ProgressionConfig{Type: "time", MaxAt: 600}
	g := New(cfg, 12345, nil)

	// Long idle stretch: the global frame counter runs past max_at
	for range 600 {
		g.Tick()
	}

	g.Jump()
	g.sim.course.Spawn(500, 100)
	g.Tick()

	// One step into the session the level is 1/600, far from the 1.5x cap
	base := cfg.Obstacles.Speed
	moved := 500 - g.Snapshot().Obstacles[0].X
	if moved < base || moved > base+0.01 {
		t.Errorf("first tick of a fresh session scrolled %g, expected base %g", moved, base)
	}

	// Play out a session well past max_at, then restart
	for range 700 {
		g.sim.player = Player{Y: cfg.Player.StartY}
		g.sim.course.Reset()
		g.Tick()
	}
	crash(t, g)
	g.Jump()
	g.sim.course.Spawn(500, 100)
	g.Tick()

	if moved := 500 - g.Snapshot().Obstacles[0].X; moved < base || moved > base+0.01 {
		t.Errorf("restarted session scrolled %g, expected base %g", moved, base)
	}
}
