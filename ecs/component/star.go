package component

// Star is one collectible of the fixed star pool.
type Star struct {
	Index  int
	HomeX  float64
	HomeY  float64
	Bounce float64
	Active bool
}

var StarComponent = NewComponent[Star]()
