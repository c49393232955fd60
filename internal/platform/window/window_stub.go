//go:build !ebiten

package window

import (
	"errors"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: desktop frontend requires building with the 'ebiten' tag")

// Run reports that the desktop frontend was not compiled in.
func Run(*flappy.Game, Options) error {
	return ErrUnavailable
}
