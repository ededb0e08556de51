package component

// Label is screen-space text drawn by the HUD at a fixed position.
type Label struct {
	Text string
	X    float64
	Y    float64
}

var LabelComponent = NewComponent[Label]()
