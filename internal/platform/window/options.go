package window

import (
	"github.com/charmbracelet/log"
)

// Options configures the desktop window.
type Options struct {
	Title  string
	TPS    int     // Simulation ticks per second
	Scale  float64 // Initial window size relative to the playfield
	Logger *log.Logger
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Flappy Bird"
	}
	if o.TPS <= 0 {
		o.TPS = 60
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	return o
}
