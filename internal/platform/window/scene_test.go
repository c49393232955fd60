package window

import (
	"testing"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

func idleSnapshot(cfg config.FlappyConfig) flappy.Snapshot {
	return flappy.Snapshot{
		Phase:  flappy.PhaseIdle,
		Player: flappy.Player{Y: cfg.Player.StartY},
	}
}

func findShapes(sc Scene, kind ShapeKind, c interface{ RGBA() (r, g, b, a uint32) }) []Shape {
	var out []Shape
	for _, s := range sc.Shapes {
		if s.Kind != kind {
			continue
		}
		r1, g1, b1, a1 := s.Color.RGBA()
		r2, g2, b2, a2 := c.RGBA()
		if r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2 {
			out = append(out, s)
		}
	}
	return out
}

func hasLabel(sc Scene, text string) bool {
	for _, l := range sc.Labels {
		if l.Text == text {
			return true
		}
	}
	return false
}

func TestBuildSceneUsesLogicalSize(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	sc := BuildScene(idleSnapshot(cfg), cfg)

	if sc.Width != 600 || sc.Height != 500 {
		t.Errorf("scene = %dx%d, expected 600x500", sc.Width, sc.Height)
	}
	if sc.Background != colornames.Skyblue {
		t.Errorf("background = %v, expected sky blue", sc.Background)
	}
}

func TestBuildSceneBird(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	sc := BuildScene(idleSnapshot(cfg), cfg)

	bodies := findShapes(sc, ShapeCircle, colornames.Gold)
	if len(bodies) != 1 {
		t.Fatalf("expected one bird body, got %d", len(bodies))
	}
	b := bodies[0]
	if b.X != 100 || b.Y != 250 || b.R != 20 {
		t.Errorf("bird body = (%v, %v) r=%v, expected (100, 250) r=20", b.X, b.Y, b.R)
	}
}

func TestBuildScenePipes(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	snap := flappy.Snapshot{
		Phase:     flappy.PhasePlaying,
		Player:    flappy.Player{Y: 250},
		Obstacles: []flappy.Obstacle{{X: 300, GapTop: 100}},
	}
	sc := BuildScene(snap, cfg)

	bodies := findShapes(sc, ShapeRect, colornames.Forestgreen)
	if len(bodies) != 2 {
		t.Fatalf("expected upper and lower pipe bodies, got %d", len(bodies))
	}
	upper, lower := bodies[0], bodies[1]
	if upper.X != 300 || upper.Y != 0 || upper.W != 80 || upper.H != 100 {
		t.Errorf("upper pipe = %+v", upper)
	}
	// Gap 180 below 100, down to the ground line at 420
	if lower.Y != 280 || lower.H != 140 {
		t.Errorf("lower pipe spans y=%v h=%v, expected y=280 h=140", lower.Y, lower.H)
	}
	if caps := findShapes(sc, ShapeRect, colornames.Darkgreen); len(caps) != 2 {
		t.Errorf("expected 2 pipe caps, got %d", len(caps))
	}
}

func TestBuildSceneGroundStaysInside(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	for frame := range 50 {
		snap := idleSnapshot(cfg)
		snap.Frame = frame
		sc := BuildScene(snap, cfg)

		for _, s := range findShapes(sc, ShapeRect, colornames.Peru) {
			if s.X < 0 || s.W <= 0 || s.Y < cfg.Field.GroundY() {
				t.Fatalf("frame %d: stripe out of the ground band: %+v", frame, s)
			}
		}
	}
}

func TestBuildSceneOverlayAndHUD(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	sc := BuildScene(idleSnapshot(cfg), cfg)
	if !hasLabel(sc, "FLAPPY BIRD") {
		t.Error("idle scene should show the title")
	}
	if !hasLabel(sc, "0") {
		t.Error("score label missing")
	}

	snap := flappy.Snapshot{
		Phase:     flappy.PhaseGameOver,
		Player:    flappy.Player{Y: 250},
		Score:     7,
		HighScore: 7,
		NewRecord: true,
	}
	sc = BuildScene(snap, cfg)
	if !hasLabel(sc, "GAME OVER - NEW BEST!") || !hasLabel(sc, "Score: 7   Best: 7") {
		t.Errorf("game over labels missing: %+v", sc.Labels)
	}
	if hasLabel(sc, "Best 7") {
		t.Error("best badge should be hidden on the game over screen")
	}

	snap = flappy.Snapshot{Phase: flappy.PhasePlaying, Player: flappy.Player{Y: 250}, Score: 3, HighScore: 9}
	sc = BuildScene(snap, cfg)
	if !hasLabel(sc, "Best 9") || !hasLabel(sc, "3") {
		t.Errorf("playing HUD labels missing: %+v", sc.Labels)
	}
	if hasLabel(sc, "FLAPPY BIRD") {
		t.Error("no overlay while playing")
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.TPS != 60 || o.Scale != 1 || o.Title == "" {
		t.Errorf("defaults = %+v", o)
	}

	o = Options{TPS: 30, Scale: 2, Title: "x"}.withDefaults()
	if o.TPS != 30 || o.Scale != 2 || o.Title != "x" {
		t.Errorf("explicit options were overwritten: %+v", o)
	}
}
