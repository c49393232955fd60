package storage

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// HighScoreKey is the settings key the high score lives under.
const HighScoreKey = "flappyHighScore"

// ParseHighScore turns a stored value into a high score. Anything that is
// not a non-negative base-10 integer reads as 0.
func ParseHighScore(raw string) int {
	v, _ := parseHighScore(raw)
	return v
}

// parseHighScore is ParseHighScore that also reports whether raw was valid.
func parseHighScore(raw string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// HighScores adapts a Store to the game's high score interface.
// Storage failures are logged and swallowed: a broken database costs the
// record, never the session.
type HighScores struct {
	store  *Store
	logger *log.Logger
}

// NewHighScores creates the adapter. A nil logger discards messages.
func NewHighScores(store *Store, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScores{store: store, logger: logger}
}

// LoadHighScore reads the stored high score, or 0 if absent or unreadable.
func (h *HighScores) LoadHighScore() int {
	raw, ok, err := h.store.Get(HighScoreKey)
	if err != nil {
		h.logger.Warn("could not read high score", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	score, valid := parseHighScore(raw)
	if !valid {
		h.logger.Warn("ignoring malformed high score", "value", raw)
	}
	return score
}

// SaveHighScore writes score as a decimal string. Errors are logged only.
func (h *HighScores) SaveHighScore(score int) {
	if err := h.store.Set(HighScoreKey, strconv.Itoa(score)); err != nil {
		h.logger.Error("could not save high score", "score", score, "error", err)
		return
	}
	h.logger.Info("new high score saved", "score", score)
}

// Reset forgets the stored high score.
func (h *HighScores) Reset() error {
	return h.store.Delete(HighScoreKey)
}

// Ensure HighScores implements flappy.HighScoreStore
var _ flappy.HighScoreStore = (*HighScores)(nil)
