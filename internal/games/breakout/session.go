package breakout

// Outcome is the session's position in its state machine.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Session tracks score, lives and outcome for one game.
// Won and lost are terminal; only a new session leaves them.
type Session struct {
	Score        int
	Lives        int
	InitialLives int
	TotalBricks  int
	Outcome      Outcome
}

// NewSession starts a session that is won after totalBricks bricks.
func NewSession(totalBricks, lives int) Session {
	if lives < 0 {
		lives = 0
	}
	s := Session{
		Lives:        lives,
		InitialLives: lives,
		TotalBricks:  totalBricks,
	}
	if lives == 0 {
		s.Outcome = OutcomeLost
	}
	return s
}

// Terminal reports whether the session has ended.
func (s *Session) Terminal() bool {
	return s.Outcome != OutcomePlaying
}

// BrickDestroyed credits one brick. The session is won exactly when the
// score reaches the brick total.
func (s *Session) BrickDestroyed() {
	if s.Terminal() {
		return
	}
	if s.Score < s.TotalBricks {
		s.Score++
	}
	if s.Score == s.TotalBricks {
		s.Outcome = OutcomeWon
	}
}

// BallLost takes a life. It reports true when lives remain and the field
// should be soft reset; false means the session is now lost.
func (s *Session) BallLost() bool {
	if s.Terminal() {
		return false
	}
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives == 0 {
		s.Outcome = OutcomeLost
		return false
	}
	return true
}
