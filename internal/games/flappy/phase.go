package flappy

// Phase is the coarse game state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is anything that can move the game between phases.
type Event int

const (
	EventJump      Event = iota // Space, Up or a click
	EventCollision              // Raised by the simulation step
)

// Effect is the side effect a transition asks the caller to perform.
type Effect int

const (
	EffectNone        Effect = iota
	EffectReset              // Start a fresh session: bird, pipes and score
	EffectImpulse            // Set the bird's velocity to the jump impulse
	EffectRecordScore        // Session ended: compare against the high score
)

// Transition is the whole state machine. Idle and game-over both restart on a
// jump; a jump while playing flaps; a collision ends the session. Every other
// pair leaves the phase unchanged.
func Transition(p Phase, e Event) (Phase, Effect) {
	switch {
	case e == EventJump && (p == PhaseIdle || p == PhaseGameOver):
		return PhasePlaying, EffectReset
	case e == EventJump && p == PhasePlaying:
		return PhasePlaying, EffectImpulse
	case e == EventCollision && p == PhasePlaying:
		return PhaseGameOver, EffectRecordScore
	default:
		return p, EffectNone
	}
}
