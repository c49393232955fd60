// Package window runs the game in a desktop window with ebiten.
//
// The playfield is drawn 1:1 in logical units: ebiten scales the logical
// screen to the window. Scene building is kept free of ebiten so it can be
// tested headless; only the painter needs the ebiten build tag.
package window

import (
	"image/color"
	"math"
	"strconv"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// ShapeKind selects how a Shape is painted.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is one filled primitive in logical coordinates. Rects use X, Y, W, H
// with X, Y the top-left corner; circles use X, Y as center and R.
type Shape struct {
	Kind       ShapeKind
	X, Y, W, H float64
	R          float64
	Color      color.RGBA
}

// Label is a line of debug-font text anchored at its top-left pixel.
type Label struct {
	Text string
	X, Y int
}

// Scene is everything drawn for one frame, back to front.
type Scene struct {
	Width, Height int
	Background    color.RGBA
	Shapes        []Shape
	Labels        []Label
}

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

// Decoration tuning in logical units.
const (
	pipeCapHeight   = 20.0
	pipeCapOverhang = 4.0
	grassHeight     = 10.0
	stripeSpacing   = 40.0
	stripeWidth     = 12.0
	groundScroll    = 2.0
	cloudDrift      = 0.5
	cloudWrap       = 200.0
	wingFrequency   = 0.3
	overlayPadding  = 12
)

// BuildScene lays out one frame from a snapshot.
func BuildScene(snap flappy.Snapshot, cfg config.FlappyConfig) Scene {
	sc := Scene{
		Width:      int(cfg.Field.Width),
		Height:     int(cfg.Field.Height),
		Background: colornames.Skyblue,
	}

	sc.addClouds(snap.Frame, cfg.Field)
	for _, o := range snap.Obstacles {
		sc.addPipe(o, cfg)
	}
	sc.addGround(snap.Frame, cfg.Field)
	sc.addBird(snap, cfg.Player)
	sc.addHUD(snap)
	if lines := snap.Message(); lines != nil {
		sc.addMessage(lines)
	}
	return sc
}

func (sc *Scene) rect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	sc.Shapes = append(sc.Shapes, Shape{Kind: ShapeRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (sc *Scene) circle(x, y, r float64, c color.RGBA) {
	sc.Shapes = append(sc.Shapes, Shape{Kind: ShapeCircle, X: x, Y: y, R: r, Color: c})
}

func (sc *Scene) addClouds(frame int, field config.FieldConfig) {
	offset := math.Mod(float64(frame)*cloudDrift, field.Width+cloudWrap)
	clouds := []struct{ dx, y, scale float64 }{
		{0, 80, 1},
		{300, 120, 0.8},
		{500, 60, 1.2},
	}
	for _, c := range clouds {
		x := field.Width - offset + c.dx
		r := 20 * c.scale
		sc.circle(x, c.y, r, colornames.White)
		sc.circle(x+r, c.y-r/2, r, colornames.White)
		sc.circle(x+2*r, c.y, r, colornames.White)
	}
}

func (sc *Scene) addPipe(o flappy.Obstacle, cfg config.FlappyConfig) {
	w := cfg.Obstacles.Width
	gapBottom := o.GapTop + cfg.Obstacles.Gap
	groundY := cfg.Field.GroundY()

	sc.rect(o.X, 0, w, o.GapTop, colornames.Forestgreen)
	sc.rect(o.X-pipeCapOverhang, o.GapTop-pipeCapHeight, w+2*pipeCapOverhang, pipeCapHeight, colornames.Darkgreen)

	sc.rect(o.X, gapBottom, w, groundY-gapBottom, colornames.Forestgreen)
	sc.rect(o.X-pipeCapOverhang, gapBottom, w+2*pipeCapOverhang, pipeCapHeight, colornames.Darkgreen)
}

func (sc *Scene) addGround(frame int, field config.FieldConfig) {
	top := field.GroundY()
	sc.rect(0, top, field.Width, field.GroundHeight, colornames.Sandybrown)
	sc.rect(0, top, field.Width, grassHeight, colornames.Limegreen)

	shift := math.Mod(float64(frame)*groundScroll, stripeSpacing)
	for x := -shift; x < field.Width; x += stripeSpacing {
		left := math.Max(x, 0)
		sc.rect(left, top+grassHeight, x+stripeWidth-left, field.GroundHeight-grassHeight, colornames.Peru)
	}
}

func (sc *Scene) addBird(snap flappy.Snapshot, player config.PlayerConfig) {
	x, y := player.X, snap.Player.Y
	r := player.HalfSize()

	wingY := y + r/4
	if math.Sin(float64(snap.Frame)*wingFrequency) < 0 {
		wingY = y - r/2
	}

	sc.circle(x, y, r, colornames.Gold)
	sc.rect(x-r, wingY, r, r/3, colornames.Goldenrod)
	sc.circle(x+r/3, y-r/3, r/4, colornames.White)
	sc.circle(x+r/3+2, y-r/3, r/8, colornames.Black)
	sc.rect(x+r*0.7, y-r/8, r/2, r/4, colornames.Orange)
}

func (sc *Scene) addHUD(snap flappy.Snapshot) {
	score := strconv.Itoa(snap.Score)
	sc.Labels = append(sc.Labels, Label{Text: score, X: (sc.Width - glyphW*len(score)) / 2, Y: 8})

	if snap.HighScore > 0 && snap.Phase != flappy.PhaseGameOver {
		best := "Best " + strconv.Itoa(snap.HighScore)
		sc.Labels = append(sc.Labels, Label{Text: best, X: sc.Width - glyphW*len(best) - 8, Y: 8})
	}
}

// addMessage centers a dimmed panel with one label per line.
func (sc *Scene) addMessage(lines []string) {
	widest := 0
	for _, l := range lines {
		widest = max(widest, len(l))
	}
	boxW := widest*glyphW + 2*overlayPadding
	boxH := len(lines)*glyphH*2 - glyphH + 2*overlayPadding
	boxX := (sc.Width - boxW) / 2
	boxY := (sc.Height - boxH) / 2

	sc.rect(float64(boxX), float64(boxY), float64(boxW), float64(boxH), color.RGBA{A: 0xb0})
	for i, l := range lines {
		sc.Labels = append(sc.Labels, Label{
			Text: l,
			X:    boxX + (boxW-len(l)*glyphW)/2,
			Y:    boxY + overlayPadding + i*glyphH*2,
		})
	}
}
