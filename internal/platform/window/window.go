//go:build ebiten

package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// app adapts a flappy game to the ebiten.Game interface.
type app struct {
	game   *flappy.Game
	logger *log.Logger
}

// Update handles input and advances the game by one tick.
func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.game.Jump()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.game.TogglePause()
	}

	if result := a.game.Tick(); result.Ended {
		a.logger.Info("session ended",
			"score", a.game.Score(),
			"high", a.game.HighScore(),
			"record", result.NewRecord,
		)
	}
	return nil
}

// Draw paints the current scene.
func (a *app) Draw(screen *ebiten.Image) {
	sc := BuildScene(a.game.Snapshot(), a.game.Config())

	screen.Fill(sc.Background)
	for _, s := range sc.Shapes {
		switch s.Kind {
		case ShapeRect:
			vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), s.Color, false)
		case ShapeCircle:
			vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.R), s.Color, true)
		}
	}
	for _, l := range sc.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X, l.Y)
	}
}

// Layout keeps the logical screen at playfield size; ebiten scales it.
func (a *app) Layout(int, int) (int, int) {
	field := a.game.Config().Field
	return int(field.Width), int(field.Height)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *flappy.Game, opts Options) error {
	opts = opts.withDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	field := game.Config().Field
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(int(field.Width*opts.Scale), int(field.Height*opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&app{game: game, logger: logger}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
