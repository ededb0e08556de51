package component

// Input stores the polled direction keys for the current frame.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

var InputComponent = NewComponent[Input]()
