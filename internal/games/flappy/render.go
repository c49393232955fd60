package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BeakChar      = '▸'
	WingUpChar    = '▴'
	WingDownChar  = '▾'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	SoilChar      = '░'
	StripeChar    = '▒'
	CloudChar     = '▒'
)

// Decoration tuning in logical units.
const (
	cloudDrift     = 0.5 // Per frame
	cloudWrap      = 200 // Extra distance before a cloud re-enters
	groundScroll   = 2.0 // Per frame
	stripeSpacing  = 40.0
	stripeWidth    = 10.0
	wingFrequency  = 0.3
	cloudBaseWidth = 80.0
)

// projection maps logical playfield coordinates onto screen cells.
type projection struct {
	sx, sy float64
}

func newProjection(field config.FieldConfig, cols, rows int) projection {
	return projection{
		sx: float64(cols) / field.Width,
		sy: float64(rows) / field.Height,
	}
}

func (p projection) col(x float64) int { return int(math.Floor(x * p.sx)) }
func (p projection) row(y float64) int { return int(math.Floor(y * p.sy)) }

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.cfg)
}

// RenderSnapshot paints a full frame: sky, pipes, ground, bird, HUD and the
// phase overlay. It never changes game state.
func RenderSnapshot(dst *core.Screen, snap Snapshot, cfg config.FlappyConfig) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	proj := newProjection(cfg.Field, dst.Width(), dst.Height())

	drawClouds(dst, proj, snap.Frame, cfg.Field)
	for _, o := range snap.Obstacles {
		drawPipe(dst, proj, o, cfg)
	}
	drawGround(dst, proj, snap.Frame, cfg.Field)
	drawBird(dst, proj, snap, cfg.Player)
	drawHUD(dst, snap)

	if lines := snap.Message(); lines != nil {
		titleColor := core.ColorBrightWhite
		switch snap.Phase {
		case PhaseIdle:
			titleColor = core.ColorBrightYellow
		case PhaseGameOver:
			titleColor = core.ColorBrightRed
		}
		drawCenteredMessage(dst, titleColor, lines...)
	}
}

// Message returns the overlay text for the current phase, title first, or
// nil when the playfield is shown bare.
func (s Snapshot) Message() []string {
	switch {
	case s.Phase == PhaseIdle:
		return []string{"FLAPPY BIRD", "Space / Up / click to start"}
	case s.Phase == PhaseGameOver:
		title := "GAME OVER"
		if s.NewRecord {
			title = "GAME OVER - NEW BEST!"
		}
		return []string{
			title,
			fmt.Sprintf("Score: %d   Best: %d", s.Score, s.HighScore),
			"Space / click to play again",
		}
	case s.Paused:
		return []string{"PAUSED", "Press P to resume"}
	}
	return nil
}

func drawClouds(dst *core.Screen, proj projection, frame int, field config.FieldConfig) {
	offset := math.Mod(float64(frame)*cloudDrift, field.Width+cloudWrap)
	clouds := []struct{ dx, y, scale float64 }{
		{0, 80, 1},
		{300, 120, 0.8},
		{500, 60, 1.2},
	}
	for _, c := range clouds {
		x := field.Width - offset + c.dx
		width := core.Max(proj.col(cloudBaseWidth*c.scale), 2)
		dst.DrawHLine(proj.col(x), proj.row(c.y), width, CloudChar, core.ColorWhite)
	}
}

func drawPipe(dst *core.Screen, proj projection, o Obstacle, cfg config.FlappyConfig) {
	left := proj.col(o.X)
	right := core.Max(proj.col(o.Right(cfg.Obstacles.Width)), left+1)
	groundRow := proj.row(cfg.Field.GroundY())
	gapTop := proj.row(o.GapTop)
	gapBottom := proj.row(o.GapTop + cfg.Obstacles.Gap)

	// Upper pipe, capped at its lower end
	dst.DrawRect(core.NewRect(left, 0, right-left, gapTop), PipeChar, core.ColorGreen)
	if gapTop > 0 {
		dst.DrawHLine(left-1, gapTop-1, right-left+2, PipeCapTop, core.ColorBrightGreen)
	}

	// Lower pipe, capped at its upper end
	dst.DrawRect(core.NewRect(left, gapBottom, right-left, groundRow-gapBottom), PipeChar, core.ColorGreen)
	if gapBottom < groundRow {
		dst.DrawHLine(left-1, gapBottom, right-left+2, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawGround(dst *core.Screen, proj projection, frame int, field config.FieldConfig) {
	top := proj.row(field.GroundY())
	dst.DrawHLine(0, top, dst.Width(), GroundChar, core.ColorBrightGreen)

	scroll := float64(frame) * groundScroll
	for y := top + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			lx := float64(x) / proj.sx
			ch := SoilChar
			if math.Mod(lx+scroll, stripeSpacing) < stripeWidth {
				ch = StripeChar
			}
			dst.SetColored(x, y, ch, core.ColorGreen)
		}
	}
}

func drawBird(dst *core.Screen, proj projection, snap Snapshot, player config.PlayerConfig) {
	x := proj.col(player.X)
	y := proj.row(snap.Player.Y)

	wing := WingDownChar
	if math.Sin(float64(snap.Frame)*wingFrequency) < 0 {
		wing = WingUpChar
	}
	dst.SetColored(x-1, y, wing, core.ColorYellow)
	dst.SetColored(x, y, BirdChar, core.ColorBrightYellow)
	dst.SetColored(x+1, y, BeakChar, core.ColorOrange)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score), core.ColorBrightWhite)

	if snap.HighScore > 0 && snap.Phase != PhaseGameOver {
		badge := fmt.Sprintf("★ %d", snap.HighScore)
		dst.DrawTextColored(dst.Width()-len([]rune(badge))-1, 0, badge, core.ColorBrightYellow)
	}
}

// drawCenteredMessage draws a boxed message in the middle of the screen, one
// blank row between lines.
func drawCenteredMessage(dst *core.Screen, titleColor core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = titleColor
		}
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+2*i, l, c)
	}
}
