package flappy

// HighScoreStore persists the best score across sessions.
// Load returns 0 when nothing usable is stored. Save is fire-and-forget:
// failures stay inside the store and never reach the game.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// MemoryHighScores keeps the high score in memory. It backs tests and runs
// where the score database could not be opened.
type MemoryHighScores struct {
	value int
	saves int
}

// NewMemoryHighScores creates a store holding initial.
func NewMemoryHighScores(initial int) *MemoryHighScores {
	return &MemoryHighScores{value: initial}
}

// LoadHighScore returns the stored value.
func (m *MemoryHighScores) LoadHighScore() int {
	return m.value
}

// SaveHighScore replaces the stored value.
func (m *MemoryHighScores) SaveHighScore(score int) {
	m.value = score
	m.saves++
}

// Saves returns how many times SaveHighScore was called.
func (m *MemoryHighScores) Saves() int {
	return m.saves
}
