package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestRenderIdleScreen(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), 1, NewMemoryHighScores(5))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "FLAPPY BIRD") {
		t.Error("idle screen should show the title box")
	}
	if !strings.Contains(out, "★ 5") {
		t.Error("idle screen should show the high score badge")
	}

	// Ground line starts at floor(420 * 24 / 500) = 20
	if screen.Get(0, 20) != GroundChar {
		t.Errorf("ground should start on row 20, got %q", screen.Get(0, 20))
	}
	for y := 21; y < 24; y++ {
		if r := screen.Get(0, y); r != SoilChar && r != StripeChar {
			t.Errorf("row %d should be soil, got %q", y, r)
		}
	}

	// Bird at column floor(100 * 80 / 600) = 13, row floor(250 * 24 / 500) = 12
	if screen.Get(13, 12) != BirdChar {
		t.Errorf("bird should be drawn at (13, 12), row = %q", screen.Row(12))
	}
}

func TestRenderPipe(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	screen := core.NewScreen(80, 24)
	snap := Snapshot{
		Phase:     PhasePlaying,
		Player:    Player{Y: 250},
		Obstacles: []Obstacle{{X: 360, GapTop: 100}},
	}

	RenderSnapshot(screen, snap, cfg)

	// Columns 48..57, gap rows 4..13
	if screen.Get(50, 1) != PipeChar {
		t.Errorf("upper pipe missing, row 1 = %q", screen.Row(1))
	}
	if screen.Get(50, 3) != PipeCapTop {
		t.Errorf("upper cap missing, row 3 = %q", screen.Row(3))
	}
	if screen.Get(50, 8) != ' ' {
		t.Errorf("gap should be empty, row 8 = %q", screen.Row(8))
	}
	if screen.Get(50, 13) != PipeCapBottom {
		t.Errorf("lower cap missing, row 13 = %q", screen.Row(13))
	}
	if screen.Get(50, 16) != PipeChar {
		t.Errorf("lower pipe missing, row 16 = %q", screen.Row(16))
	}
	if cell := screen.GetCell(50, 16); cell.Color != core.ColorGreen {
		t.Errorf("pipe color = %v, expected green", cell.Color)
	}
}

func TestRenderGameOverAndPause(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), 1, nil)
	screen := core.NewScreen(80, 24)

	g.Jump()
	g.TogglePause()
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause box")
	}

	g.TogglePause()
	g.sim.score = 3
	g.sim.player = Player{Y: 500}
	g.Tick()
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER - NEW BEST!") {
		t.Errorf("game over screen should announce the record:\n%s", out)
	}
	if !strings.Contains(out, "Score: 3   Best: 3") {
		t.Errorf("game over screen should show score and best:\n%s", out)
	}
	if strings.Contains(out, "★") {
		t.Error("high score badge is hidden on the game over screen")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), 1, nil)

	// Must not panic on degenerate terminals
	g.Render(core.NewScreen(0, 0))
	g.Render(core.NewScreen(3, 2))
}
