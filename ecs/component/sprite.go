package component

// Sprite references a registered image by key. FrameW/FrameH select a cell of
// a horizontal sprite sheet; zero means the whole image.
type Sprite struct {
	Image  string
	FrameW int
	FrameH int
	Frame  int
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
