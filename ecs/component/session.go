package component

type GameState uint8

const (
	GamePlaying GameState = iota
	GameOver
)

func (s GameState) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "playing"
}

// Session is the singleton gameplay state. GameOver is terminal and freezes
// the physics world.
type Session struct {
	State GameState
}

func (s *Session) Over() bool {
	return s != nil && s.State == GameOver
}

var SessionComponent = NewComponent[Session]()
